package gui

import "unicode/utf8"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Styling
	style Style

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Clipping, mirrored into DrawList
	clipStack []Rect

	// Input (read-only during frame)
	Input *InputState

	// Widget state (persisted between frames)
	stateStore StateStore

	// IDs
	idStack      []ID
	counterStack []uint32
	idCounter    uint32 // Auto-increment for call-site IDs
	seenIDs      map[ID]int

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// activeID is the widget holding the pointer (pressed button, drag).
	// It is dropped if that widget stops calling Interact.
	activeID   ID
	activeSeen bool

	// Occlusion layers, see layer.go
	layers     []layerEntry
	prevLayers []layerEntry
	layerStack []ID

	cursorIcon CursorIcon

	// Set once a scroll area used this frame's wheel delta.
	wheelConsumed bool

	// Font texture ID (set by renderer) for the built-in font
	FontTextureID uint32

	// Avoids redundant MeasureText calls within a frame.
	textMeasureCache map[measureKey]Vec2

	// WantCaptureMouse tells the application the pointer is over GUI.
	WantCaptureMouse bool
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		layoutStack:      make([]*Layout, 0, 16),
		clipStack:        make([]Rect, 0, 8),
		idStack:          make([]ID, 0, 32),
		counterStack:     make([]uint32, 0, 32),
		textMeasureCache: make(map[measureKey]Vec2, 64),
		seenIDs:          make(map[ID]int),
		stateStore:       make(MapStateStore),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.counterStack = ctx.counterStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	if ctx.activeID != 0 && !ctx.activeSeen {
		guiLogger.Debug("Reset: dropping orphaned active widget", "id", ctx.activeID)
		ctx.activeID = 0
	}
	ctx.activeSeen = false

	ctx.prevLayers, ctx.layers = ctx.layers, ctx.prevLayers[:0]
	ctx.layerStack = ctx.layerStack[:0]

	ctx.clipStack = append(ctx.clipStack[:0], Rect{W: displaySize.X, H: displaySize.Y})
	ctx.cursorIcon = CursorDefault
	ctx.wheelConsumed = false
	ctx.WantCaptureMouse = false

	clear(ctx.textMeasureCache)
	clear(ctx.seenIDs)
}

// ClipRect returns the current clip rectangle in screen coordinates.
func (ctx *Context) ClipRect() Rect {
	if n := len(ctx.clipStack); n > 0 {
		return ctx.clipStack[n-1]
	}
	return Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
}

// PushClipRect narrows the clip to r intersected with the current clip.
// Both drawing and pointer interaction respect it.
func (ctx *Context) PushClipRect(r Rect) {
	c := ctx.ClipRect().Intersect(r)
	ctx.clipStack = append(ctx.clipStack, c)
	if ctx.DrawList != nil {
		ctx.DrawList.PushClipRect(c.X, c.Y, c.X+c.W, c.Y+c.H)
	}
}

// PopClipRect restores the previous clip rectangle.
func (ctx *Context) PopClipRect() {
	if n := len(ctx.clipStack); n > 1 {
		ctx.clipStack = ctx.clipStack[:n-1]
		if ctx.DrawList != nil {
			ctx.DrawList.PopClipRect()
		}
	}
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

type measureKey struct {
	text  string
	scale float32
}

// MeasureText returns the size of rendered text.
// The built-in font is monospace, so width is rune count times the
// scaled glyph width. Results are cached per-frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	key := measureKey{text: text, scale: ctx.style.FontScale}
	if size, ok := ctx.textMeasureCache[key]; ok {
		return size
	}
	size := Vec2{
		X: float32(utf8.RuneCountInString(text)) * ctx.style.CharWidth * ctx.style.FontScale,
		Y: ctx.lineHeight(),
	}
	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[key] = size
	}
	return size
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Width - layout.Padding*2 - layout.PaddingX*2
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

// currentLayoutHeight returns the available height in the current layout.
func (ctx *Context) currentLayoutHeight() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Height - layout.Padding*2 - layout.PaddingY*2
	}
	return ctx.DisplaySize.Y - ctx.cursor.Y
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// AvailableRect is the space left in the current layout from the cursor.
func (ctx *Context) AvailableRect() Rect {
	layout := ctx.currentLayout()
	if layout == nil {
		return Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: ctx.currentLayoutWidth(), H: ctx.currentLayoutHeight()}
	}
	return Rect{
		X: ctx.cursor.X,
		Y: ctx.cursor.Y,
		W: maxf(0, layout.StartX+ctx.currentLayoutWidth()-ctx.cursor.X),
		H: maxf(0, layout.StartY+ctx.currentLayoutHeight()-ctx.cursor.Y),
	}
}

// AddText draws text with the current style using the built-in font.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += layout.gapY(ctx.style.ItemSpacing)
	} else {
		ctx.cursor.X += layout.gapX(ctx.style.ItemSpacing)
	}
}

// ItemPos returns the position for the next widget with gap applied.
// This is the recommended way for widgets to get their drawing position.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// AdvanceCursor moves the cursor after drawing an item.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, ctx.cursor.X+size.X-layout.StartX)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, ctx.cursor.Y+size.Y-layout.StartY)
	}

	layout.ItemCount++
}
