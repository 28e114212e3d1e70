// Package ui contains the Bubble Tea program that draws the directory browser.
// The model owns no navigation state; it is a terminal surface for the loop in
// internal/browser.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are mapped onto the browser key alphabet (keys.go) and
//     forwarded to the event source the loop reads from.
//   - The loop renders into a Screen. Screen keeps only the latest frame;
//     waitForFrame turns it into a frameMsg, and the model stores it for View.
//   - When the loop returns, Screen.Finish produces a loopDoneMsg and the
//     model quits the program, restoring the terminal.
//
// Rendering (view.go) works on styledLine values so width and height limits
// are applied before any Lip Gloss styling is added.
package ui
