package toolwindows

import (
	"slices"

	"github.com/go-theft-auto/toolwindows/gui"
)

// DragState is an ongoing title bar drag.
type DragState struct {
	Pivot           gui.Vec2 // Pointer position when the drag started
	InitialPosition gui.Vec2 // Window position when the drag started
}

// WindowState is the persisted state of one tool window.
// Position is relative to the top-left of the parent clip rect.
type WindowState struct {
	Collapsed bool
	Position  gui.Vec2
	Size      gui.Vec2 // Expanded size; kept while collapsed
	Drag      *DragState
	Resize    gui.ResizeState
	Resizable [2]bool
}

// newWindowState builds the state for a window seen for the first time.
func newWindowState(p Parameters, minSize gui.Vec2) WindowState {
	size := defaultWindowSize
	if p.HasDefaultSize {
		size = p.DefaultSize
	}
	return WindowState{
		Position:  p.DefaultPos,
		Size:      size.Max(minSize),
		Resizable: p.Resizable,
	}
}

// StackState is the z-order of the windows of one region.
// The last entry is drawn last and is the topmost window.
type StackState struct {
	Order []gui.ID
}

// Topmost returns the topmost window, or 0 when there is none.
func (s *StackState) Topmost() gui.ID {
	if len(s.Order) == 0 {
		return 0
	}
	return s.Order[len(s.Order)-1]
}

// Contains reports whether id is in the stack.
func (s *StackState) Contains(id gui.ID) bool {
	return slices.Contains(s.Order, id)
}

// Sync makes the stack hold exactly the declared windows. Windows that
// are still declared keep their relative order; newly declared ones are
// appended in declaration order.
func (s *StackState) Sync(declared []gui.ID) (removed, added []gui.ID) {
	kept := s.Order[:0:0]
	for _, id := range s.Order {
		if slices.Contains(declared, id) && !slices.Contains(kept, id) {
			kept = append(kept, id)
		} else {
			removed = append(removed, id)
		}
	}
	for _, id := range declared {
		if !slices.Contains(kept, id) {
			kept = append(kept, id)
			added = append(added, id)
		}
	}
	s.Order = kept
	return removed, added
}

// BringToFront moves id to the top, keeping the order of the others.
// It reports whether the order changed.
func (s *StackState) BringToFront(id gui.ID) bool {
	i := slices.Index(s.Order, id)
	if i < 0 || i == len(s.Order)-1 {
		return false
	}
	s.Order = append(slices.Delete(s.Order, i, i+1), id)
	return true
}
