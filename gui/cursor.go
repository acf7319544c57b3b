package gui

// CursorIcon is a hint for the pointer shape the backend should show.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorMove
	CursorResizeHorizontal
	CursorResizeVertical
	CursorResizeNwSe
)

func (c CursorIcon) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorResizeHorizontal:
		return "resize-horizontal"
	case CursorResizeVertical:
		return "resize-vertical"
	case CursorResizeNwSe:
		return "resize-nwse"
	default:
		return "default"
	}
}

// SetCursorIcon requests a pointer shape for this frame.
// The last request of the frame wins.
func (ctx *Context) SetCursorIcon(icon CursorIcon) {
	ctx.cursorIcon = icon
}

// CursorIcon returns the pointer shape requested so far this frame.
func (ctx *Context) CursorIcon() CursorIcon {
	return ctx.cursorIcon
}
