package gui_test

import (
	"testing"

	"github.com/go-theft-auto/toolwindows/gui"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	dl.Finalize()
	m.renderCalls++
	m.lastCmds = len(dl.CmdBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

var displaySize = gui.Vec2{X: 800, Y: 600}

// runFrame resets input, applies set, and draws one frame.
func runFrame(t *testing.T, ui *gui.GUI, in *gui.InputState, set func(in *gui.InputState), draw func(ctx *gui.Context)) *gui.Context {
	t.Helper()
	in.Reset()
	if set != nil {
		set(in)
	}
	ctx := ui.Begin(in, displaySize, 0.016)
	draw(ctx)
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	return ctx
}

func pointerAt(x, y float32, down bool) func(in *gui.InputState) {
	return func(in *gui.InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(gui.MouseButtonLeft, down)
	}
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))
	input := gui.NewInputState()

	ctx := ui.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	ctx.Text("Hello World")
	ctx.TextColored("Colored", gui.ColorYellow)

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastCmds == 0 {
		t.Error("expected draw commands for the text")
	}
}

func TestButtonWithClick(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	draw := func(clicked *bool) func(ctx *gui.Context) {
		return func(ctx *gui.Context) {
			ctx.SetCursorPos(0, 0)
			if ctx.Button("Test Button") {
				*clicked = true
			}
		}
	}

	var clicked bool
	runFrame(t, ui, in, pointerAt(20, 10, true), draw(&clicked))
	if clicked {
		t.Error("button should not report a click while pressed")
	}
	runFrame(t, ui, in, pointerAt(20, 10, false), draw(&clicked))
	if !clicked {
		t.Error("button should report a click on release")
	}
}

func TestButtonReleasedOutsideDoesNotClick(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	clicked := false
	draw := func(ctx *gui.Context) {
		ctx.SetCursorPos(0, 0)
		clicked = ctx.Button("Test Button") || clicked
	}
	runFrame(t, ui, in, pointerAt(20, 10, true), draw)
	runFrame(t, ui, in, pointerAt(400, 400, false), draw)
	if clicked {
		t.Error("release outside the button should not click")
	}
}

func TestIDScoping(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), displaySize, 0.016)
	defer ui.End()

	if gui.HashID("a") != gui.ID(0).With("a") {
		t.Error("HashID should scope under the zero ID")
	}
	if gui.HashID("a").With("b") == gui.HashID("b").With("a") {
		t.Error("scoping should depend on order")
	}
	if gui.HashID("a").WithInt(1) == gui.HashID("a").WithInt(2) {
		t.Error("integer salts should differ")
	}

	ctx.PushID("left")
	left := ctx.GetID("button")
	ctx.PopID()
	ctx.PushID("right")
	right := ctx.GetID("button")
	ctx.PopID()
	if left == right {
		t.Error("same label in different scopes should differ")
	}

	first := ctx.GetID("row")
	second := ctx.GetID("row")
	if first == second {
		t.Error("repeated labels in one scope should differ")
	}
}

func TestUniqueIDRepeats(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	base := gui.HashID("region")

	var ids []gui.ID
	draw := func(ctx *gui.Context) {
		ids = []gui.ID{ctx.UniqueID(base), ctx.UniqueID(base), ctx.UniqueID(gui.HashID("other"))}
	}

	runFrame(t, ui, in, nil, draw)
	first := ids
	if first[0] != base {
		t.Errorf("first request = %v, want the ID itself", first[0])
	}
	if first[1] == base {
		t.Error("a repeat should get a derived ID")
	}
	if first[2] != gui.HashID("other") {
		t.Error("other IDs should not be affected")
	}

	runFrame(t, ui, in, nil, draw)
	for i := range ids {
		if ids[i] != first[i] {
			t.Errorf("id %d changed between frames: %v, then %v", i, first[i], ids[i])
		}
	}
}

func TestIDCounterIsPerScope(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	var ids []gui.ID
	draw := func(extra int) func(ctx *gui.Context) {
		return func(ctx *gui.Context) {
			ctx.PushID("sibling")
			for i := 0; i < extra; i++ {
				ctx.GetID("x")
			}
			ctx.PopID()
			ids = append(ids, ctx.GetID("stable"))
		}
	}
	runFrame(t, ui, in, nil, draw(1))
	runFrame(t, ui, in, nil, draw(5))
	if ids[0] != ids[1] {
		t.Error("ID should not depend on how many widgets a sibling scope drew")
	}
}

func TestInteractDrag(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	id := gui.HashID("handle")
	rect := gui.Rect{X: 10, Y: 10, W: 20, H: 20}

	var resp gui.Response
	draw := func(ctx *gui.Context) { resp = ctx.Interact(rect, id, gui.SenseDrag) }

	runFrame(t, ui, in, pointerAt(15, 15, true), draw)
	if !resp.Pressed || !resp.DragStarted || !resp.Dragged {
		t.Fatalf("press frame: %+v", resp)
	}
	if !resp.DragDelta.IsZero() {
		t.Errorf("drag delta on press frame = %v", resp.DragDelta)
	}

	// The pointer leaves the rect but the drag continues.
	runFrame(t, ui, in, pointerAt(100, 40, true), draw)
	if !resp.Dragged || resp.DragDelta != (gui.Vec2{X: 85, Y: 25}) {
		t.Errorf("drag frame: %+v", resp)
	}

	runFrame(t, ui, in, pointerAt(100, 40, false), draw)
	if !resp.DragStopped || resp.Dragged {
		t.Errorf("release frame: %+v", resp)
	}
}

func TestInteractFirstPressedWins(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	rect := gui.Rect{W: 50, H: 50}

	var a, b gui.Response
	runFrame(t, ui, in, pointerAt(10, 10, true), func(ctx *gui.Context) {
		a = ctx.Interact(rect, gui.HashID("a"), gui.SenseClick)
		b = ctx.Interact(rect, gui.HashID("b"), gui.SenseClick)
	})
	if !a.Pressed || b.Pressed {
		t.Errorf("a pressed %v, b pressed %v; want only a", a.Pressed, b.Pressed)
	}
	if b.Hovered {
		t.Error("b should not be hovered while a holds the pointer")
	}
}

func TestOrphanedActiveWidgetIsDropped(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	rect := gui.Rect{W: 50, H: 50}

	ctx := runFrame(t, ui, in, pointerAt(10, 10, true), func(ctx *gui.Context) {
		ctx.Interact(rect, gui.HashID("gone"), gui.SenseDrag)
	})
	if !ctx.AnyActive() {
		t.Fatal("expected an active widget")
	}

	// The widget is not drawn this frame.
	runFrame(t, ui, in, pointerAt(10, 10, true), func(*gui.Context) {})
	ctx = runFrame(t, ui, in, pointerAt(10, 10, true), func(*gui.Context) {})
	if ctx.AnyActive() {
		t.Errorf("active widget %v should have been dropped", ctx.ActiveID())
	}
}

func TestInteractRespectsClip(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	var resp gui.Response
	runFrame(t, ui, in, pointerAt(80, 10, false), func(ctx *gui.Context) {
		ctx.PushClipRect(gui.Rect{W: 50, H: 50})
		resp = ctx.Interact(gui.Rect{W: 100, H: 20}, gui.HashID("wide"), gui.SenseHover)
		ctx.PopClipRect()
	})
	if resp.Hovered {
		t.Error("clipped part of a widget should not be hovered")
	}
}

func TestStateStore(t *testing.T) {
	store := gui.MapStateStore{}
	ui := gui.New(&mockRenderer{}, gui.WithStateStore(store))
	ctx := ui.Begin(gui.NewInputState(), displaySize, 0.016)
	defer ui.End()

	id := gui.HashID("state")
	if _, ok := gui.LoadState[gui.SplitState](ctx, id); ok {
		t.Fatal("state should not exist yet")
	}
	if got := gui.GetState(ctx, id, gui.SplitState{Ratio: 0.5}); got.Ratio != 0.5 {
		t.Errorf("default = %v", got)
	}

	gui.SetState(ctx, id, gui.SplitState{Ratio: 0.25})
	if got, ok := gui.LoadState[gui.SplitState](ctx, id); !ok || got.Ratio != 0.25 {
		t.Errorf("loaded %v, %v", got, ok)
	}
	if _, ok := gui.LoadState[gui.TabGroupState](ctx, id); ok {
		t.Error("wrong type should be reported as missing")
	}
	if _, ok := store[id]; !ok {
		t.Error("state should be in the provided store")
	}

	gui.DeleteState(ctx, id)
	if _, ok := gui.LoadState[gui.SplitState](ctx, id); ok {
		t.Error("state should be deleted")
	}
}

func TestCursorIconReportedAfterEnd(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	runFrame(t, ui, in, nil, func(ctx *gui.Context) { ctx.SetCursorIcon(gui.CursorMove) })
	if ui.CursorIcon() != gui.CursorMove {
		t.Errorf("cursor = %v, want %v", ui.CursorIcon(), gui.CursorMove)
	}
	runFrame(t, ui, in, nil, func(*gui.Context) {})
	if ui.CursorIcon() != gui.CursorDefault {
		t.Errorf("cursor should reset each frame, got %v", ui.CursorIcon())
	}
}

func TestDragValue(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	value := float32(10)

	draw := func(ctx *gui.Context) {
		ctx.SetCursorPos(0, 0)
		ctx.DragValue("value", &value, gui.WithDragSpeed(0.5), gui.WithWidth(80))
	}
	runFrame(t, ui, in, pointerAt(10, 5, true), draw)
	runFrame(t, ui, in, pointerAt(30, 5, true), draw)
	runFrame(t, ui, in, pointerAt(30, 5, false), draw)

	if value != 20 {
		t.Errorf("value = %v, want 20", value)
	}
}

func TestCheckboxToggles(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	checked := false

	draw := func(ctx *gui.Context) {
		ctx.SetCursorPos(0, 0)
		ctx.Checkbox("enabled", &checked)
	}
	runFrame(t, ui, in, pointerAt(4, 4, true), draw)
	runFrame(t, ui, in, pointerAt(4, 4, false), draw)
	if !checked {
		t.Error("checkbox should be checked after a click")
	}
}
