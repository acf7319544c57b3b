package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Position tracking
	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	// Spacing (Tailwind-style)
	Gap      float32 // Space between children (gap-*)
	GapX     float32 // Horizontal gap override
	GapY     float32 // Vertical gap override
	Padding  float32 // Inner padding (p-*)
	PaddingX float32 // Horizontal padding override
	PaddingY float32 // Vertical padding override

	// State
	ItemCount int // For gap calculation
}

func (l *Layout) gapX(fallback float32) float32 {
	switch {
	case l.GapX != 0:
		return l.GapX
	case l.Gap != 0:
		return l.Gap
	}
	return fallback
}

func (l *Layout) gapY(fallback float32) float32 {
	switch {
	case l.GapY != 0:
		return l.GapY
	case l.Gap != 0:
		return l.Gap
	}
	return fallback
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children (like Tailwind gap-*).
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// GapX sets horizontal spacing (like Tailwind gap-x-*).
func GapX(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapX = pixels }
}

// GapY sets vertical spacing (like Tailwind gap-y-*).
func GapY(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapY = pixels }
}

// Padding sets inner padding (like Tailwind p-*).
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// pushLayoutWith pushes layout starting at the cursor.
// Zero Width/Height inherit the remaining space of the parent.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout, returns its content bounds and
// accounts for it as a single item of the parent.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth,
		H: layout.MaxHeight,
	}

	parent := ctx.currentLayout()
	if parent == nil {
		ctx.cursor.X = layout.StartX
		ctx.cursor.Y = layout.StartY + layout.MaxHeight
		return bounds
	}

	if parent.Type == LayoutVertical {
		ctx.cursor.X = layout.StartX
		ctx.cursor.Y = layout.StartY + layout.MaxHeight
		parent.MaxWidth = maxf(parent.MaxWidth, layout.StartX+layout.MaxWidth-parent.StartX)
		parent.MaxHeight = ctx.cursor.Y - parent.StartY
	} else {
		ctx.cursor.X = layout.StartX + layout.MaxWidth
		ctx.cursor.Y = layout.StartY
		parent.MaxWidth = ctx.cursor.X - parent.StartX
		parent.MaxHeight = maxf(parent.MaxHeight, layout.StartY+layout.MaxHeight-parent.StartY)
	}
	parent.ItemCount++

	return bounds
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.beginItem()
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// HStack creates a horizontal layout container.
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.beginItem()
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Region lays out contents inside rect, independent of the surrounding
// layout. Drawing and interaction are clipped to rect and the cursor is
// restored afterwards. It returns the content bounds.
//
//	bounds := ctx.Region(rect)(func() { ... })
func (ctx *Context) Region(rect Rect, opts ...LayoutOption) func(func()) Rect {
	return func(contents func()) Rect {
		saved := ctx.cursor
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing, Width: rect.W, Height: rect.H}
		for _, opt := range opts {
			opt(layout)
		}
		padX := layout.Padding + layout.PaddingX
		padY := layout.Padding + layout.PaddingY

		ctx.PushClipRect(rect)
		ctx.cursor = Vec2{X: rect.X + padX, Y: rect.Y + padY}
		layout.StartX = ctx.cursor.X
		layout.StartY = ctx.cursor.Y
		ctx.layoutStack = append(ctx.layoutStack, layout)

		contents()

		ctx.layoutStack = ctx.layoutStack[:len(ctx.layoutStack)-1]
		ctx.PopClipRect()
		ctx.cursor = saved

		return Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}
	}
}

// Frame fills the remaining space of the current layout with a panel
// background and border, and lays contents out inside it with padding.
func (ctx *Context) Frame(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.beginItem()
		rect := ctx.AvailableRect()
		ctx.DrawList.FillRect(rect, ctx.style.PanelColor)
		if ctx.style.BorderSize > 0 {
			ctx.DrawList.StrokeRect(rect, ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}
		opts = append([]LayoutOption{Padding(ctx.style.PanelPadding)}, opts...)
		ctx.Region(rect, opts...)(contents)
		ctx.AdvanceCursor(rect.Size())
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal line.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	y := pos.Y + 2
	ctx.DrawList.AddLine(pos.X, y, pos.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.AdvanceCursor(Vec2{X: w, Y: 4})
}
