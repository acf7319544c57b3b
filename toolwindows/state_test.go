package toolwindows

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/toolwindows/gui"
)

func TestStackSync(t *testing.T) {
	tests := []struct {
		name        string
		order       []gui.ID
		declared    []gui.ID
		want        []gui.ID
		wantRemoved int
		wantAdded   int
	}{
		{"empty", nil, nil, nil, 0, 0},
		{"first frame", nil, []gui.ID{1, 2}, []gui.ID{1, 2}, 0, 2},
		{"unchanged", []gui.ID{2, 1}, []gui.ID{1, 2}, []gui.ID{2, 1}, 0, 0},
		{"removed", []gui.ID{1, 2, 3}, []gui.ID{3, 1}, []gui.ID{1, 3}, 1, 0},
		{"added at the top", []gui.ID{2, 1}, []gui.ID{1, 2, 3, 4}, []gui.ID{2, 1, 3, 4}, 0, 2},
		{"replaced", []gui.ID{1, 2}, []gui.ID{3}, []gui.ID{3}, 2, 1},
		{"duplicate in stored order", []gui.ID{1, 1, 2}, []gui.ID{1, 2}, []gui.ID{1, 2}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StackState{Order: slices.Clone(tt.order)}
			removed, added := s.Sync(tt.declared)
			if !slices.Equal(s.Order, tt.want) {
				t.Errorf("order = %v, want %v", s.Order, tt.want)
			}
			if len(removed) != tt.wantRemoved || len(added) != tt.wantAdded {
				t.Errorf("removed %d added %d, want %d and %d", len(removed), len(added), tt.wantRemoved, tt.wantAdded)
			}
		})
	}
}

func TestStackSyncDoesNotAliasStoredOrder(t *testing.T) {
	stored := []gui.ID{1, 2, 3}
	s := StackState{Order: stored}
	s.Sync([]gui.ID{3})
	if !slices.Equal(stored, []gui.ID{1, 2, 3}) {
		t.Errorf("stored order changed to %v", stored)
	}
}

func TestBringToFront(t *testing.T) {
	s := StackState{Order: []gui.ID{1, 2, 3, 4}}

	if !s.BringToFront(2) {
		t.Fatal("expected the order to change")
	}
	if want := []gui.ID{1, 3, 4, 2}; !slices.Equal(s.Order, want) {
		t.Errorf("order = %v, want %v", s.Order, want)
	}
	if s.Topmost() != 2 {
		t.Errorf("topmost = %v, want 2", s.Topmost())
	}

	if s.BringToFront(2) {
		t.Error("topmost window should not change the order")
	}
	if s.BringToFront(9) {
		t.Error("unknown window should not change the order")
	}
	if len(s.Order) != 4 {
		t.Errorf("len = %d, want 4", len(s.Order))
	}
}

func TestTopmostEmpty(t *testing.T) {
	var s StackState
	if s.Topmost() != 0 {
		t.Errorf("topmost of empty stack = %v", s.Topmost())
	}
}

func TestClampPosition(t *testing.T) {
	sizes := []gui.Vec2{{X: 800, Y: 600}, {X: 10, Y: 10}, {X: 0, Y: 0}, {X: 16, Y: 40}}
	positions := []gui.Vec2{{X: -500, Y: -1}, {X: 0, Y: 0}, {X: 300, Y: 200}, {X: 5000, Y: 5000}}
	const margin = 16

	for _, size := range sizes {
		available := gui.Vec2{X: max(size.X-margin, margin), Y: max(size.Y-margin, margin)}
		for _, pos := range positions {
			got := clampPosition(pos, size, margin)
			if got.X < 0 || got.X > available.X || got.Y < 0 || got.Y > available.Y {
				t.Errorf("clampPosition(%v, %v) = %v, outside [0, %v]", pos, size, got, available)
			}
		}
	}

	if got := clampPosition(gui.Vec2{X: 300, Y: 200}, gui.Vec2{X: 800, Y: 600}, margin); got != (gui.Vec2{X: 300, Y: 200}) {
		t.Errorf("position inside the area moved to %v", got)
	}
}

func TestResizeFloor(t *testing.T) {
	minSize := defaultOptions().MinSize
	edges := []gui.ResizableEdge{
		gui.ResizeEdgeLeft,
		gui.ResizeEdgeRight,
		gui.ResizeEdgeTop,
		gui.ResizeEdgeBottom,
		gui.ResizeEdgeRight | gui.ResizeEdgeBottom,
	}

	for _, edge := range edges {
		pos, size := gui.Vec2{X: 50, Y: 50}, gui.Vec2{X: 200, Y: 100}
		rs := gui.StartResize(edge, gui.Vec2{X: 100, Y: 100}, pos, size)
		for _, d := range []float32{-400, -150, -10, 0, 10, 150, 400} {
			gotPos, gotSize := rs.Apply(gui.Vec2{X: 100 + d, Y: 100 + d}, minSize)
			if gotSize.X < minSize.X || gotSize.Y < minSize.Y {
				t.Errorf("edge %v delta %v: size %v below %v", edge, d, gotSize, minSize)
			}
			if edge&gui.ResizeEdgeLeft != 0 && gotPos.X+gotSize.X != pos.X+size.X {
				t.Errorf("edge %v delta %v: right edge moved to %v", edge, d, gotPos.X+gotSize.X)
			}
			if edge&gui.ResizeEdgeTop != 0 && gotPos.Y+gotSize.Y != pos.Y+size.Y {
				t.Errorf("edge %v delta %v: bottom edge moved to %v", edge, d, gotPos.Y+gotSize.Y)
			}
		}
	}
}

func TestNewWindowState(t *testing.T) {
	minSize := gui.Vec2{X: 100, Y: 24}

	st := newWindowState(Parameters{Resizable: [2]bool{true, false}}, minSize)
	if st.Size != defaultWindowSize {
		t.Errorf("size = %v, want %v", st.Size, defaultWindowSize)
	}
	if st.Resizable != [2]bool{true, false} {
		t.Errorf("resizable = %v", st.Resizable)
	}

	st = newWindowState(Parameters{DefaultPos: gui.Vec2{X: 5, Y: 6}, DefaultSize: gui.Vec2{X: 10, Y: 300}, HasDefaultSize: true}, minSize)
	if st.Position != (gui.Vec2{X: 5, Y: 6}) {
		t.Errorf("position = %v", st.Position)
	}
	if st.Size != (gui.Vec2{X: 100, Y: 300}) {
		t.Errorf("size = %v, want the floor applied", st.Size)
	}
}

func TestWindowRectCollapsed(t *testing.T) {
	clip := gui.Rect{X: 10, Y: 20, W: 800, H: 600}
	st := &WindowState{Position: gui.Vec2{X: 5, Y: 5}, Size: gui.Vec2{X: 200, Y: 100}}

	r := windowRect(st, clip, 24)
	if r != (gui.Rect{X: 15, Y: 25, W: 200 + borderAdjust, H: 100 + borderAdjust}) {
		t.Errorf("expanded rect = %+v", r)
	}

	st.Collapsed = true
	r = windowRect(st, clip, 24)
	if r.W != 200+borderAdjust || r.H != 24+borderAdjust {
		t.Errorf("collapsed rect = %+v", r)
	}
}
