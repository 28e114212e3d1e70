package backend

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// InputSourceError reports that the terminal input mechanism failed.
type InputSourceError struct {
	Err error
}

func (e *InputSourceError) Error() string {
	return fmt.Sprintf("input source failed: %v", e.Err)
}

func (e *InputSourceError) Unwrap() error {
	return e.Err
}

// Source merges independent producers into one ordered stream of events.
// Keys arrive through Forward, ticks from an internal ticker and from
// auxiliary producers calling Notify.
type Source struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	failOnce sync.Once
	failed   chan struct{}
	err      error
}

// NewSource starts the timer producer. A non-positive interval disables
// ticks.
func NewSource(interval time.Duration) *Source {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Source{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		failed:   make(chan struct{}),
	}
	if interval > 0 {
		s.wg.Add(1)
		go s.tick()
	}
	return s
}

// Next blocks until an event is available.
func (s *Source) Next(ctx context.Context) (Event, error) {
	select {
	case <-s.failed:
		return Event{}, &InputSourceError{Err: s.err}
	default:
	}
	select {
	case evt := <-s.events:
		return evt, nil
	case <-s.failed:
		return Event{}, &InputSourceError{Err: s.err}
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Forward pushes a key press. It blocks while the stream is full and returns
// false once the source is stopped.
func (s *Source) Forward(k Key) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.events <- InputEvent(k):
		return true
	}
}

// Notify pushes a tick without blocking. A tick already waiting in the
// stream makes another one redundant, so a full stream drops it.
func (s *Source) Notify() bool {
	if s.ctx.Err() != nil {
		return false
	}
	select {
	case s.events <- TickEvent:
		return true
	default:
		return false
	}
}

// Fail marks the input mechanism as broken. Pending and future calls to Next
// return an InputSourceError wrapping err.
func (s *Source) Fail(err error) {
	s.failOnce.Do(func() {
		s.err = err
		close(s.failed)
	})
}

// Stop halts the producers. It is safe to call more than once.
func (s *Source) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Source) tick() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.Notify()
		}
	}
}
