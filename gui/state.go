package gui

// StateStore persists widget state between frames.
// Unlike ImGui's hidden state, this is explicit and inspectable.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is a simple in-memory StateStore implementation.
type MapStateStore map[ID]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

// Delete removes a value from the store.
func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState retrieves typed state from the context.
// Returns defaultVal if the state doesn't exist or has wrong type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := LoadState[T](ctx, id); ok {
		return v
	}
	return defaultVal
}

// LoadState retrieves typed state and reports whether it existed.
// A value of the wrong type is reported as missing.
func LoadState[T any](ctx *Context, id ID) (T, bool) {
	var zero T
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// SetState stores typed state in the context.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// DeleteState removes state from the context.
func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

// ScrollableState tracks state for scrollable areas.
type ScrollableState struct {
	ScrollY       float32 // Vertical scroll position
	ScrollX       float32 // Horizontal scroll position
	ContentHeight float32 // Measured content height
	ContentWidth  float32 // Measured content width
	DragStartY    float32 // Mouse Y when scrollbar drag started
	DragStartX    float32 // Mouse X when scrollbar drag started
	DragStartScr  float32 // Scroll position when scrollbar drag started
}

// DragValueState tracks an in-progress drag on a DragValue widget.
type DragValueState struct {
	StartValue float32
	StartX     float32
}

// TabGroupState tracks which tab of a TabGroup is selected.
type TabGroupState struct {
	Active int
}

// ResizableEdge represents which edge(s) of a window are being resized.
type ResizableEdge uint8

const (
	ResizeEdgeNone   ResizableEdge = 0
	ResizeEdgeLeft   ResizableEdge = 1 << 0
	ResizeEdgeRight  ResizableEdge = 1 << 1
	ResizeEdgeTop    ResizableEdge = 1 << 2
	ResizeEdgeBottom ResizableEdge = 1 << 3
)

// ResizeState tracks the state of a window resize operation.
type ResizeState struct {
	Active      bool          // Currently being resized
	Edge        ResizableEdge // Which edge(s) are being resized
	StartMouseX float32       // Mouse X when resize started
	StartMouseY float32       // Mouse Y when resize started
	StartX      float32       // Window X when resize started
	StartY      float32       // Window Y when resize started
	StartW      float32       // Window width when resize started
	StartH      float32       // Window height when resize started
}

// StartResize captures the pointer and geometry when a resize drag begins.
func StartResize(edge ResizableEdge, pointer, pos, size Vec2) ResizeState {
	return ResizeState{
		Active:      true,
		Edge:        edge,
		StartMouseX: pointer.X,
		StartMouseY: pointer.Y,
		StartX:      pos.X,
		StartY:      pos.Y,
		StartW:      size.X,
		StartH:      size.Y,
	}
}
