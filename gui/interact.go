package gui

// Sense selects which pointer interactions a widget wants.
type Sense uint8

const (
	SenseHover Sense = 0
	SenseClick Sense = 1 << 0
	SenseDrag  Sense = 1 << 1

	SenseClickAndDrag = SenseClick | SenseDrag
)

// Response describes the pointer interaction with a widget this frame.
type Response struct {
	ID   ID
	Rect Rect

	Hovered     bool // Pointer is over the widget and nothing else holds it
	Pressed     bool // Primary button went down on the widget this frame
	Clicked     bool // Primary button released over the widget after a press on it
	Dragged     bool // Widget holds the pointer while the button is down
	DragStarted bool
	DragStopped bool

	DragDelta  Vec2 // Pointer movement since last frame while dragged
	PointerPos Vec2
}

// Interact senses the pointer against rect for widget id.
//
// The widget pressed first becomes active and keeps the pointer until
// the button is released, even if the pointer leaves rect. Clip and
// occlusion layers are applied to hovering and pressing.
func (ctx *Context) Interact(rect Rect, id ID, sense Sense) Response {
	resp := Response{ID: id, Rect: rect}
	if ctx.Input == nil {
		return resp
	}

	p := ctx.Input.MousePos()
	resp.PointerPos = p

	if ctx.activeID == id {
		ctx.activeSeen = true
	}

	over := rect.Contains(p) && ctx.ClipRect().Contains(p) && ctx.pointerInLayer(p)
	resp.Hovered = over && (ctx.activeID == 0 || ctx.activeID == id)
	if resp.Hovered {
		ctx.WantCaptureMouse = true
	}
	if sense == SenseHover {
		return resp
	}

	justPressed := false
	if resp.Hovered && ctx.activeID == 0 && ctx.Input.MouseClicked(MouseButtonLeft) {
		ctx.activeID = id
		ctx.activeSeen = true
		resp.Pressed = true
		justPressed = true
		if sense&SenseDrag != 0 {
			resp.DragStarted = true
			guiLogger.Debug("drag started", "id", id, "pointer", p)
		}
	}

	if ctx.activeID != id {
		return resp
	}

	if ctx.Input.MouseDown(MouseButtonLeft) {
		if sense&SenseDrag != 0 {
			resp.Dragged = true
			if !justPressed {
				resp.DragDelta = ctx.Input.MouseDelta()
			}
		}
		return resp
	}

	// Released (possibly in the same frame as the press).
	ctx.activeID = 0
	if sense&SenseClick != 0 && rect.Contains(p) {
		resp.Clicked = true
	}
	if sense&SenseDrag != 0 {
		resp.DragStopped = true
		guiLogger.Debug("drag stopped", "id", id, "pointer", p)
	}
	return resp
}

// IsActive reports whether id currently holds the pointer.
func (ctx *Context) IsActive(id ID) bool {
	return ctx.activeID != 0 && ctx.activeID == id
}

// AnyActive reports whether some widget currently holds the pointer.
func (ctx *Context) AnyActive() bool {
	return ctx.activeID != 0
}

// ActiveID returns the widget holding the pointer, or 0.
func (ctx *Context) ActiveID() ID {
	return ctx.activeID
}
