package tcell

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/toolwindows/gui"
)

func TestHandleMouse(t *testing.T) {
	a := NewInputAdapter()
	in := a.Begin()

	a.Handle(tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModCtrl))
	if in.MousePos() != (gui.Vec2{X: 20, Y: 28}) {
		t.Errorf("pointer = %v, want the center of cell (2, 3)", in.MousePos())
	}
	if !in.MouseClicked(gui.MouseButtonLeft) || !in.MouseDown(gui.MouseButtonLeft) {
		t.Error("left button should be pressed")
	}
	if !in.ModCtrl {
		t.Error("ctrl should be held")
	}

	in = a.Begin()
	a.Handle(tcell.NewEventMouse(2, 3, tcell.ButtonNone, tcell.ModNone))
	if !in.MouseReleased(gui.MouseButtonLeft) || in.MouseDown(gui.MouseButtonLeft) {
		t.Error("left button should be released")
	}
}

func TestHandlePressAndReleaseInOneFrame(t *testing.T) {
	a := NewInputAdapter()
	in := a.Begin()
	a.Handle(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	a.Handle(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))

	if !in.MouseClicked(gui.MouseButtonLeft) || !in.MouseReleased(gui.MouseButtonLeft) {
		t.Error("both edges should be seen by the frame")
	}
}

func TestHandleWheel(t *testing.T) {
	tests := []struct {
		button tcell.ButtonMask
		x, y   float32
	}{
		{tcell.WheelUp, 0, 1},
		{tcell.WheelDown, 0, -1},
		{tcell.WheelLeft, 1, 0},
		{tcell.WheelRight, -1, 0},
	}
	for _, tt := range tests {
		a := NewInputAdapter()
		in := a.Begin()
		a.Handle(tcell.NewEventMouse(0, 0, tt.button, tcell.ModNone))
		if in.MouseWheelX != tt.x || in.MouseWheelY != tt.y {
			t.Errorf("button %v: wheel = (%v, %v), want (%v, %v)", tt.button, in.MouseWheelX, in.MouseWheelY, tt.x, tt.y)
		}
		if in = a.Begin(); in.MouseWheelY != 0 || in.MouseWheelX != 0 {
			t.Error("wheel should reset each frame")
		}
	}
}

func TestHandleKeysAndResize(t *testing.T) {
	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, k := range keys {
		a := NewInputAdapter()
		a.Handle(k)
		if !a.Quit() {
			t.Errorf("key %v should quit", k.Name())
		}
	}

	a := NewInputAdapter()
	a.Handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if a.Quit() {
		t.Error("other keys should not quit")
	}

	cols, rows := a.Handle(tcell.NewEventResize(30, 12))
	if cols != 30 || rows != 12 {
		t.Errorf("resize = %d x %d", cols, rows)
	}
}

func TestPollEvents(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := PollEvents(ctx, screen)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok && k.Rune() == 'q' {
				screen.Fini()
				select {
				case _, open := <-events:
					for open {
						_, open = <-events
					}
				case <-time.After(2 * time.Second):
					t.Fatal("events channel not closed after Fini")
				}
				return
			}
		case <-timeout:
			t.Fatal("injected key not delivered")
		}
	}
}
