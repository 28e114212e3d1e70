package main

import (
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/dirnav/internal/app"
	"github.com/atomicstack/dirnav/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Tick:       time.Second,
			Watch:      true,
			ShowFooter: true,
			Width:      80,
			Height:     24,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"tick":   "1s",
			"width":  "80",
			"height": "24",
			"footer": "true",
		},
		Args: []string{"--tick", "1s"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["tick"] != "1s" {
		t.Fatalf("expected tick 1s, got %v", flagsValue["tick"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["session"] == "" {
		t.Fatalf("expected session id in payload")
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestRootCmdRejectsPositionalArguments(t *testing.T) {
	err := newRootCmd([]string{"somewhere"}, nil).Execute()
	if err == nil {
		t.Fatalf("expected an error for positional arguments")
	}
	var ee *exitError
	if errors.As(err, &ee) {
		t.Fatalf("expected a usage error, got exit code %d", ee.code)
	}
}

func TestRootCmdConfigurationErrorExitsTwo(t *testing.T) {
	err := newRootCmd([]string{"--tick", "0s"}, nil).Execute()
	var ee *exitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected exitError, got %v", err)
	}
	if ee.code != 2 {
		t.Fatalf("expected exit code 2, got %d", ee.code)
	}
}

func TestRootCmdUnknownFlag(t *testing.T) {
	if err := newRootCmd([]string{"--bogus"}, nil).Execute(); err == nil {
		t.Fatalf("expected an error for an unknown flag")
	}
}
