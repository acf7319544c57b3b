package demo

import (
	"testing"

	"github.com/go-theft-auto/toolwindows/gui"
	"github.com/go-theft-auto/toolwindows/internal/config"
	"github.com/go-theft-auto/toolwindows/toolwindows"
)

type mockRenderer struct {
	vertices int
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	dl.Finalize()
	m.vertices = len(dl.VtxBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }

func (m *mockRenderer) Resize(width, height int) {}

var display = gui.Vec2{X: 1024, Y: 768}

func TestDeclareWindowsUsesConfig(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	tw := toolwindows.New()

	windows := []config.ToolWindowConfig{
		{Salt: "a", Title: "A", Content: config.ContentLorem, DefaultPos: &[2]float32{10, 20}, DefaultSize: &[2]float32{250, 150}, Resizable: &[2]bool{true, false}},
		{Salt: "b", Title: "B", Content: config.ContentTable},
	}

	ctx := ui.Begin(in, display, 1.0/60)
	tw.Windows(ctx, func(b *toolwindows.Builder) {
		DeclareWindows(b, windows, &ExampleState{})
	})

	a, ok := tw.State(ctx, tw.WindowID(ctx, "a"))
	if !ok {
		t.Fatal("window a has no state")
	}
	if a.Position != (gui.Vec2{X: 10, Y: 20}) || a.Size != (gui.Vec2{X: 250, Y: 150}) {
		t.Errorf("a = %+v", a)
	}
	if a.Resizable != [2]bool{true, false} {
		t.Errorf("a resizable = %v", a.Resizable)
	}

	b, ok := tw.State(ctx, tw.WindowID(ctx, "b"))
	if !ok {
		t.Fatal("window b has no state")
	}
	if b.Size != (gui.Vec2{X: 300, Y: 200}) {
		t.Errorf("b size = %v, want the default", b.Size)
	}

	order := tw.Order(ctx)
	if len(order) != 2 || order[1] != tw.WindowID(ctx, "b") {
		t.Errorf("order = %v, want b on top", order)
	}

	if err := ui.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestScenesDraw(t *testing.T) {
	scenes := map[string]Scene{
		"simple":         Simple,
		"inside-windows": InsideWindows,
		"inside-dock":    InsideDock,
	}
	for name, scene := range scenes {
		t.Run(name, func(t *testing.T) {
			r := &mockRenderer{}
			ui := gui.New(r)
			in := gui.NewInputState()
			a := NewApp(config.DefaultConfig())

			for range 2 {
				in.Reset()
				in.SetMousePos(300, 300)
				ctx := ui.Begin(in, display, 1.0/60)
				a.Frame(ctx, scene, gui.Rect{W: display.X, H: display.Y})
				if err := ui.End(); err != nil {
					t.Fatalf("End: %v", err)
				}
			}
			if r.vertices == 0 {
				t.Error("scene drew nothing")
			}
		})
	}
}

func TestTabStatesAreSeparate(t *testing.T) {
	a := NewApp(config.DefaultConfig())
	if a.tabState("tab 1") != a.tabState("tab 1") {
		t.Error("a tab should keep its state")
	}
	if a.tabState("tab 1") == a.tabState("tab 4") {
		t.Error("tabs should not share state")
	}
}

func TestInspectionFollowsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DebugLayout = true
	a := NewApp(cfg)
	if !a.ToolWindows().Options().DebugLayout {
		t.Error("debug_layout should enable inspection")
	}
}

func TestExampleStateSnapshot(t *testing.T) {
	s := &ExampleState{Number: 2, Toggle: true}
	s.event("clicked")
	n, on, last := s.Snapshot()
	if n != 2 || !on || last != "clicked" {
		t.Errorf("snapshot = %v %v %q", n, on, last)
	}
}
