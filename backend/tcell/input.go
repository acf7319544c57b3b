package tcell

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/toolwindows/gui"
)

// PollEvents pumps screen events into a channel until ctx is done or the
// screen is finalized. It is the only goroutine of the terminal backend;
// the frame loop drains the channel between frames.
func PollEvents(ctx context.Context, screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// InputAdapter turns tcell events into gui.InputState for one frame.
type InputAdapter struct {
	input *gui.InputState
	quit  bool
}

// NewInputAdapter creates an adapter with an empty input state.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{input: gui.NewInputState()}
}

// Begin starts a new input frame.
func (a *InputAdapter) Begin() *gui.InputState {
	a.input.Reset()
	return a.input
}

// Input returns the current input state.
func (a *InputAdapter) Input() *gui.InputState {
	return a.input
}

// Quit reports whether the user asked to leave (Esc, q or Ctrl+C).
func (a *InputAdapter) Quit() bool {
	return a.quit
}

// Handle applies one event. It returns the new screen size in cells for
// resize events, or (0, 0).
func (a *InputAdapter) Handle(ev tcell.Event) (cols, rows int) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			a.quit = true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			a.quit = true
		}
	case *tcell.EventResize:
		return ev.Size()
	}
	return 0, 0
}

func (a *InputAdapter) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	// Aim at the cell center so thin hit areas inside a cell still match.
	a.input.SetMousePos(float32(x*CellWidth+CellWidth/2), float32(y*CellHeight+CellHeight/2))

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		a.input.SetMouseWheel(0, 1)
	case buttons&tcell.WheelDown != 0:
		a.input.SetMouseWheel(0, -1)
	case buttons&tcell.WheelLeft != 0:
		a.input.SetMouseWheel(1, 0)
	case buttons&tcell.WheelRight != 0:
		a.input.SetMouseWheel(-1, 0)
	}

	a.input.SetMouseButton(gui.MouseButtonLeft, buttons&tcell.Button1 != 0)
	a.input.SetMouseButton(gui.MouseButtonRight, buttons&tcell.Button2 != 0)
	a.input.SetMouseButton(gui.MouseButtonMiddle, buttons&tcell.Button3 != 0)

	a.input.ModCtrl = ev.Modifiers()&tcell.ModCtrl != 0
	a.input.ModShift = ev.Modifiers()&tcell.ModShift != 0
	a.input.ModAlt = ev.Modifiers()&tcell.ModAlt != 0
}
