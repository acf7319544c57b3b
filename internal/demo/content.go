// Package demo holds the content and scenes shared by the demo programs
// in cmd/.
package demo

import (
	"fmt"
	"sync"

	"github.com/go-theft-auto/toolwindows/gui"
)

// LoremIpsum is filler text for scroll areas.
const LoremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut " +
	"labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea " +
	"commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla " +
	"pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est " +
	"laborum."

// ExampleState is the state edited by the example controls. Several
// windows can show the same state, so access goes through the mutex.
type ExampleState struct {
	mu     sync.Mutex
	Number float32
	Toggle bool

	// Last is a short description of the last change, shown under the
	// contents and on the terminal demo's status line.
	Last string
}

// Snapshot returns a copy of the values without the lock.
func (s *ExampleState) Snapshot() (number float32, toggle bool, last string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Number, s.Toggle, s.Last
}

func (s *ExampleState) event(msg string, args ...any) {
	s.Last = msg
	logger.Debug(msg, args...)
}

// DrawExampleContents draws a heading and wrapped text followed by
// widgets bound to state and the last change they made.
func DrawExampleContents(ctx *gui.Context, state *ExampleState) {
	state.mu.Lock()
	defer state.mu.Unlock()

	ctx.Heading("A very very very long title")
	ctx.TextWrapped("This content is wrapped and clipped.", 0)

	if ctx.ToggleValue("Toggle me", &state.Toggle) {
		state.event("toggled", "value", state.Toggle)
	}
	if ctx.Button("Clickable button") {
		state.event("clicked")
	}
	ctx.HStack()(func() {
		ctx.Text("drag me")
		if ctx.DragValue("number", &state.Number) {
			state.event(fmt.Sprintf("changed: %.1f", state.Number), "value", state.Number)
		}
	})
	if state.Last != "" {
		ctx.LabelText("last:", state.Last)
	}
}
