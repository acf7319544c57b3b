package gui_test

import (
	"math"
	"testing"

	"github.com/go-theft-auto/toolwindows/gui"
)

func TestSplitGeometry(t *testing.T) {
	ctx := newTestContext(t)
	rect := gui.Rect{W: 404, H: 100}

	first, second := ctx.Split("v", rect, gui.SplitVertical, 0.5)
	if first != (gui.Rect{W: 200, H: 100}) || second != (gui.Rect{X: 204, W: 200, H: 100}) {
		t.Errorf("vertical split = %+v, %+v", first, second)
	}

	first, second = ctx.Split("h", gui.Rect{W: 100, H: 404}, gui.SplitHorizontal, 0.25)
	if first != (gui.Rect{W: 100, H: 100}) || second != (gui.Rect{Y: 104, W: 100, H: 300}) {
		t.Errorf("horizontal split = %+v, %+v", first, second)
	}
}

func TestSplitDrag(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	rect := gui.Rect{W: 404, H: 100}

	var first gui.Rect
	draw := func(ctx *gui.Context) {
		first, _ = ctx.Split("main", rect, gui.SplitVertical, 0.5)
	}

	runFrame(t, ui, in, nil, draw)
	runFrame(t, ui, in, pointerAt(202, 50, true), draw)
	if ui.CursorIcon() != gui.CursorResizeHorizontal {
		t.Errorf("cursor over divider = %v", ui.CursorIcon())
	}
	runFrame(t, ui, in, pointerAt(242, 50, true), draw)
	ctx := runFrame(t, ui, in, pointerAt(242, 50, false), draw)

	if !near(first.W, 240) {
		t.Errorf("first width = %v, want 240", first.W)
	}
	st, _ := gui.LoadState[gui.SplitState](ctx, gui.HashID("main"))
	if !near(st.Ratio, 0.6) {
		t.Errorf("ratio = %v, want 0.6", st.Ratio)
	}

	// Dragging past the end clamps the ratio.
	runFrame(t, ui, in, pointerAt(242, 50, true), draw)
	runFrame(t, ui, in, pointerAt(2000, 50, true), draw)
	ctx = runFrame(t, ui, in, pointerAt(2000, 50, false), draw)
	st, _ = gui.LoadState[gui.SplitState](ctx, gui.HashID("main"))
	if st.Ratio != 0.95 {
		t.Errorf("ratio = %v, want 0.95", st.Ratio)
	}
}

func TestTabGroup(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	tabs := []string{"One", "Two"}

	var active int
	var scope gui.ID
	var body gui.Rect
	draw := func(ctx *gui.Context) {
		ctx.TabGroup("tabs", gui.Rect{W: 400, H: 300}, tabs)(func(tab int) {
			active = tab
			scope = ctx.CurrentID()
			body = ctx.ClipRect()
		})
	}

	runFrame(t, ui, in, nil, draw)
	if active != 0 {
		t.Errorf("initial tab = %d", active)
	}
	if body != (gui.Rect{Y: 12, W: 400, H: 288}) {
		t.Errorf("body = %+v", body)
	}
	firstScope := scope

	// "Two" starts after "One" (3 chars + padding) and a small gap.
	runFrame(t, ui, in, pointerAt(50, 5, true), draw)
	runFrame(t, ui, in, pointerAt(50, 5, false), draw)
	runFrame(t, ui, in, nil, draw)
	if active != 1 {
		t.Fatalf("tab after click = %d, want 1", active)
	}
	if scope == firstScope {
		t.Error("tabs should run under different ID scopes")
	}
}

func TestTabGroupClampsStaleSelection(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	tabs := []string{"One", "Two", "Three"}
	active := -1
	draw := func(ctx *gui.Context) {
		ctx.TabGroup("tabs", gui.Rect{W: 400, H: 300}, tabs)(func(tab int) { active = tab })
	}
	ctx := runFrame(t, ui, in, nil, draw)
	gui.SetState(ctx, gui.HashID("tabs"), gui.TabGroupState{Active: 2})

	tabs = tabs[:2]
	runFrame(t, ui, in, nil, draw)
	if active != 1 {
		t.Errorf("active = %d, want 1", active)
	}

	tabs = nil
	active = -1
	runFrame(t, ui, in, nil, draw)
	if active != -1 {
		t.Error("contents should not run without tabs")
	}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}
