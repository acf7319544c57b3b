package gui

const (
	windowEdgeThickness = 4
	windowTitlePadding  = 4
)

var (
	defaultDocumentSize = Vec2{X: 300, Y: 200}
	defaultDocumentMin  = Vec2{X: 200, Y: 100}
)

// OptMinSize is the smallest size a document window can be resized to.
var OptMinSize = NewOptKey("minSize", defaultDocumentMin)

// WithMinSize sets the minimum size of resizable document windows.
func WithMinSize(w, h float32) Option { return WithOpt(OptMinSize, Vec2{X: w, Y: h}) }

// Document is a movable, resizable window declared for one frame.
type Document struct {
	Title       string
	DefaultPos  Vec2 // Relative to the bounds given to DocumentWindows
	DefaultSize Vec2
	Draw        func()
}

// DocumentWindowState persists a document window's geometry.
type DocumentWindowState struct {
	Pos    Vec2 // Relative to the bounds
	Size   Vec2
	Resize ResizeState
}

// documentStack is the z-order of document windows, last = front.
type documentStack struct {
	Order []ID
}

// DocumentWindows draws a set of overlapping windows kept inside bounds.
// Windows can be moved by their title bar and resized from any edge.
// Pressing anywhere on a window brings it to the front. Each window is
// an occlusion layer, so widgets below it ignore the pointer over it.
//
//	ctx.DocumentWindows("docs", central, []gui.Document{
//	    {Title: "Document 1", DefaultPos: gui.Vec2{X: 250, Y: 100}, Draw: drawDoc1},
//	}, gui.WithMinSize(200, 100))
func (ctx *Context) DocumentWindows(id string, bounds Rect, docs []Document, opts ...Option) {
	o := applyOptions(opts)
	minSize := GetOpt(o, OptMinSize)

	areaID := ctx.CurrentID().With(id)
	stack := GetState(ctx, areaID, documentStack{})

	byID := make(map[ID]*Document, len(docs))
	declared := make([]ID, 0, len(docs))
	for i := range docs {
		wid := areaID.With(docs[i].Title)
		if _, dup := byID[wid]; dup {
			continue
		}
		byID[wid] = &docs[i]
		declared = append(declared, wid)
	}

	order := stack.Order[:0:0]
	for _, wid := range stack.Order {
		if _, ok := byID[wid]; ok {
			order = append(order, wid)
		}
	}
	for _, wid := range declared {
		if !containsID(order, wid) {
			order = append(order, wid)
		}
	}

	states := make(map[ID]DocumentWindowState, len(order))
	for _, wid := range order {
		states[wid] = ctx.documentState(wid, byID[wid], bounds, minSize)
	}

	// Bring the pressed window forward before drawing, walking top-down
	// so the frontmost window under the pointer wins.
	if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) && !ctx.AnyActive() {
		p := ctx.Input.MousePos()
		if ctx.ClipRect().Contains(p) && ctx.LayerOwns(p, order...) {
			for i := len(order) - 1; i >= 0; i-- {
				st := states[order[i]]
				r := RectFromMinSize(bounds.Min().Add(st.Pos), st.Size).Expand(windowEdgeThickness)
				if r.Contains(p) {
					order = append(append(order[:i:i], order[i+1:]...), order[i])
					break
				}
			}
		}
	}

	for i, wid := range order {
		st := states[wid]
		ctx.documentWindow(wid, byID[wid], &st, bounds, minSize, i == len(order)-1)
		SetState(ctx, wid, st)
	}

	SetState(ctx, areaID, documentStack{Order: order})
}

func containsID(ids []ID, id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (ctx *Context) documentState(wid ID, doc *Document, bounds Rect, minSize Vec2) DocumentWindowState {
	if st, ok := LoadState[DocumentWindowState](ctx, wid); ok {
		return st
	}
	size := doc.DefaultSize
	if size.IsZero() {
		size = defaultDocumentSize
	}
	st := DocumentWindowState{Pos: doc.DefaultPos, Size: size.Max(minSize)}
	constrainDocument(&st, bounds)
	return st
}

// constrainDocument keeps the window inside bounds, shrinking it when
// bounds are smaller than the window.
func constrainDocument(st *DocumentWindowState, bounds Rect) {
	st.Size.X = minf(st.Size.X, bounds.W)
	st.Size.Y = minf(st.Size.Y, bounds.H)
	st.Pos.X = clampf(st.Pos.X, 0, maxf(0, bounds.W-st.Size.X))
	st.Pos.Y = clampf(st.Pos.Y, 0, maxf(0, bounds.H-st.Size.Y))
}

func (ctx *Context) documentWindow(wid ID, doc *Document, st *DocumentWindowState, bounds Rect, minSize Vec2, front bool) {
	rect := RectFromMinSize(bounds.Min().Add(st.Pos), st.Size)

	ctx.PushIDValue(wid)
	defer ctx.PopID()

	ctx.BeginLayer(wid, rect.Expand(windowEdgeThickness))
	defer ctx.EndLayer()

	// Edges first so a press on the border resizes instead of moving.
	ctx.documentResize(wid, rect, st, minSize)

	titleH := ctx.lineHeight() + windowTitlePadding*2
	titleBar := Rect{X: rect.X, Y: rect.Y, W: rect.W, H: titleH}
	resp := ctx.Interact(titleBar, wid.With("title"), SenseDrag)
	if resp.Dragged {
		st.Pos = st.Pos.Add(resp.DragDelta)
		ctx.SetCursorIcon(CursorMove)
	}

	constrainDocument(st, bounds)
	rect = RectFromMinSize(bounds.Min().Add(st.Pos), st.Size)
	titleBar = Rect{X: rect.X, Y: rect.Y, W: rect.W, H: titleH}

	ctx.DrawList.FillRect(rect, ctx.style.WindowBgColor)
	ctx.DrawList.StrokeRect(rect, ctx.style.WindowBorderColor, ctx.style.BorderSize)
	barColor := ctx.style.TitleBarColor
	if front {
		barColor = ctx.style.TitleBarActiveColor
	}
	ctx.DrawList.FillRect(titleBar, barColor)

	title := TextWidthEllipsis(ctx, doc.Title, rect.W-windowTitlePadding*2)
	ctx.PushClipRect(titleBar)
	ctx.AddText(titleBar.X+windowTitlePadding, titleBar.Y+windowTitlePadding, title, ctx.style.TitleTextColor)
	ctx.PopClipRect()

	body := Rect{X: rect.X, Y: rect.Y + titleH, W: rect.W, H: maxf(0, rect.H-titleH)}
	if doc.Draw != nil {
		ctx.Region(body, Padding(ctx.style.PanelPadding))(doc.Draw)
	}
}

// documentResize senses the four edges and the bottom-right corner and
// applies an ongoing resize.
func (ctx *Context) documentResize(wid ID, rect Rect, st *DocumentWindowState, minSize Vec2) {
	t := float32(windowEdgeThickness)
	corner := Rect{X: rect.X + rect.W - t*2, Y: rect.Y + rect.H - t*2, W: t * 3, H: t * 3}
	edges := []struct {
		edge ResizableEdge
		rect Rect
		icon CursorIcon
	}{
		{ResizeEdgeRight | ResizeEdgeBottom, corner, CursorResizeNwSe},
		{ResizeEdgeLeft, Rect{X: rect.X - t, Y: rect.Y, W: t * 2, H: rect.H}, CursorResizeHorizontal},
		{ResizeEdgeRight, Rect{X: rect.X + rect.W - t, Y: rect.Y, W: t * 2, H: rect.H}, CursorResizeHorizontal},
		{ResizeEdgeTop, Rect{X: rect.X, Y: rect.Y - t, W: rect.W, H: t * 2}, CursorResizeVertical},
		{ResizeEdgeBottom, Rect{X: rect.X, Y: rect.Y + rect.H - t, W: rect.W, H: t * 2}, CursorResizeVertical},
	}

	for _, e := range edges {
		resp := ctx.Interact(e.rect, wid.With("resize").WithInt(int(e.edge)), SenseDrag)
		if resp.Hovered || resp.Dragged {
			ctx.SetCursorIcon(e.icon)
		}
		if resp.DragStarted {
			st.Resize = StartResize(e.edge, resp.PointerPos, st.Pos, st.Size)
		}
		if resp.DragStopped {
			st.Resize.Active = false
		}
		if resp.Dragged && st.Resize.Active && st.Resize.Edge == e.edge {
			st.Pos, st.Size = st.Resize.Apply(resp.PointerPos, minSize)
		}
	}
}

// Apply returns the geometry of a resize that started at rs, with the
// pointer now at pointer. Size never drops below minSize; when the floor
// is hit on the left or top edge the opposite edge stays put.
func (rs ResizeState) Apply(pointer, minSize Vec2) (pos, size Vec2) {
	dx := pointer.X - rs.StartMouseX
	dy := pointer.Y - rs.StartMouseY

	x, y, w, h := rs.StartX, rs.StartY, rs.StartW, rs.StartH
	if rs.Edge&ResizeEdgeLeft != 0 {
		x, w = rs.StartX+dx, rs.StartW-dx
	}
	if rs.Edge&ResizeEdgeRight != 0 {
		w = rs.StartW + dx
	}
	if rs.Edge&ResizeEdgeTop != 0 {
		y, h = rs.StartY+dy, rs.StartH-dy
	}
	if rs.Edge&ResizeEdgeBottom != 0 {
		h = rs.StartH + dy
	}

	if w < minSize.X {
		if rs.Edge&ResizeEdgeLeft != 0 {
			x = rs.StartX + rs.StartW - minSize.X
		}
		w = minSize.X
	}
	if h < minSize.Y {
		if rs.Edge&ResizeEdgeTop != 0 {
			y = rs.StartY + rs.StartH - minSize.Y
		}
		h = minSize.Y
	}

	return Vec2{X: x, Y: y}, Vec2{X: w, Y: h}
}
