package toolwindows

import "github.com/go-theft-auto/toolwindows/gui"

const (
	borderAdjust = (innerMargin + outerMargin) * 2
	titlePadding = 4
)

// window renders one tool window for one frame.
type window struct {
	id      gui.ID
	params  Parameters
	content Drawable
	state   *WindowState
	opts    *Options
	topmost bool
}

// clampPosition keeps pos inside the area available in a clip of the
// given size, leaving margin reachable on the far edges.
func clampPosition(pos, clipSize gui.Vec2, margin float32) gui.Vec2 {
	available := gui.Vec2{
		X: max(clipSize.X-margin, margin),
		Y: max(clipSize.Y-margin, margin),
	}
	return gui.Vec2{
		X: gui.Clamp(pos.X, 0, available.X),
		Y: gui.Clamp(pos.Y, 0, available.Y),
	}
}

// windowRect returns the on-screen rectangle of a window whose state is
// st, inside clip.
func windowRect(st *WindowState, clip gui.Rect, titleBarHeight float32) gui.Rect {
	size := st.Size
	if st.Collapsed {
		size.Y = titleBarHeight
	}
	return gui.RectFromMinSize(clip.Min().Add(st.Position), size.Add(gui.Splat(borderAdjust)))
}

func (w *window) rect(clip gui.Rect) gui.Rect {
	return windowRect(w.state, clip, w.opts.TitleBarHeight)
}

func (w *window) titleBar(r gui.Rect) gui.Rect {
	return gui.Rect{X: r.X, Y: r.Y, W: r.W, H: min(w.opts.TitleBarHeight+borderAdjust, r.H)}
}

func (w *window) toggleRect(r gui.Rect) gui.Rect {
	h := w.titleBar(r).H
	return gui.Rect{X: r.X, Y: r.Y, W: h, H: h}
}

// resizable reports whether the window is resizable on any axis right now.
// Collapsed windows only resize horizontally.
func (w *window) resizable() (x, y bool) {
	return w.state.Resizable[0], w.state.Resizable[1] && !w.state.Collapsed
}

// hitRect is the area in which the window owns the pointer.
func (w *window) hitRect(clip gui.Rect) gui.Rect {
	r := w.rect(clip)
	if rx, ry := w.resizable(); w.topmost && (rx || ry) {
		r = r.Expand(w.opts.EdgeThickness)
	}
	return r
}

type resizeHandle struct {
	edge gui.ResizableEdge
	rect gui.Rect
	icon gui.CursorIcon
}

// handles returns the resize handles of a window occupying r. The corner
// comes first so it wins over the edges it overlaps.
func (w *window) handles(r gui.Rect) []resizeHandle {
	rx, ry := w.resizable()
	t := w.opts.EdgeThickness
	c := w.opts.CornerSize

	var hs []resizeHandle
	if rx || ry {
		edge := gui.ResizeEdgeNone
		if rx {
			edge |= gui.ResizeEdgeRight
		}
		if ry {
			edge |= gui.ResizeEdgeBottom
		}
		hs = append(hs, resizeHandle{edge, gui.Rect{X: r.X + r.W - c + t, Y: r.Y + r.H - c + t, W: c, H: c}, gui.CursorResizeNwSe})
	}
	if rx {
		hs = append(hs,
			resizeHandle{gui.ResizeEdgeLeft, gui.Rect{X: r.X - t, Y: r.Y, W: t * 2, H: r.H}, gui.CursorResizeHorizontal},
			resizeHandle{gui.ResizeEdgeRight, gui.Rect{X: r.X + r.W - t, Y: r.Y, W: t * 2, H: max(0, r.H-c+t)}, gui.CursorResizeHorizontal},
		)
	}
	if ry {
		hs = append(hs,
			resizeHandle{gui.ResizeEdgeTop, gui.Rect{X: r.X, Y: r.Y - t, W: r.W, H: t * 2}, gui.CursorResizeVertical},
			resizeHandle{gui.ResizeEdgeBottom, gui.Rect{X: r.X, Y: r.Y + r.H - t, W: max(0, r.W-c+t), H: t * 2}, gui.CursorResizeVertical},
		)
	}
	return hs
}

// interact runs resize, collapse and drag for this frame. Handles are
// sensed first, then the toggle, then the title bar, so the first of
// them under a press takes the pointer.
func (w *window) interact(ctx *gui.Context, clip gui.Rect) (cornerHovered bool) {
	st := w.state
	r := w.rect(clip)

	if w.topmost {
		for _, h := range w.handles(r) {
			resp := ctx.Interact(h.rect, w.id.With("resize").WithInt(int(h.edge)), gui.SenseDrag)
			if resp.Hovered || resp.Dragged {
				ctx.SetCursorIcon(h.icon)
				if h.icon == gui.CursorResizeNwSe {
					cornerHovered = true
				}
			}
			if resp.DragStarted {
				st.Resize = gui.StartResize(h.edge, resp.PointerPos, st.Position, st.Size)
			}
			if resp.Dragged && st.Resize.Active && st.Resize.Edge == h.edge {
				st.Position, st.Size = st.Resize.Apply(resp.PointerPos, w.opts.MinSize)
			}
			if resp.DragStopped {
				st.Resize.Active = false
			}
		}
		r = w.rect(clip)
	}

	if ctx.Interact(w.toggleRect(r), w.id.With("toggle"), gui.SenseClick).Clicked {
		st.Collapsed = !st.Collapsed
		logger.Debug("tool window toggled", "title", w.params.Title, "collapsed", st.Collapsed)
	}

	if !w.topmost {
		st.Drag = nil
		return cornerHovered
	}
	resp := ctx.Interact(w.titleBar(r), w.id.With("title"), gui.SenseDrag)
	if resp.DragStarted {
		st.Drag = &DragState{Pivot: resp.PointerPos, InitialPosition: st.Position}
		logger.Debug("tool window drag started", "title", w.params.Title, "pos", st.Position)
	}
	if resp.Dragged && st.Drag != nil {
		st.Position = st.Drag.InitialPosition.Add(resp.PointerPos.Sub(st.Drag.Pivot))
		ctx.SetCursorIcon(gui.CursorMove)
	}
	if resp.DragStopped {
		st.Drag = nil
		logger.Debug("tool window drag stopped", "title", w.params.Title, "pos", st.Position)
	}
	return cornerHovered
}

// render interacts with and draws the window. The caller has opened the
// window's layer and ID scope.
func (w *window) render(ctx *gui.Context, clip gui.Rect) {
	st := w.state
	st.Position = clampPosition(st.Position, clip.Size(), w.opts.PositionMargin)

	cornerHovered := w.interact(ctx, clip)
	st.Position = clampPosition(st.Position, clip.Size(), w.opts.PositionMargin)

	style := ctx.Style()
	dl := ctx.DrawList
	r := w.rect(clip)
	bar := w.titleBar(r)

	dl.FillRect(r, style.WindowBgColor)
	dl.StrokeRect(r, style.WindowBorderColor, max(style.BorderSize, 1))

	barColor := style.TitleBarColor
	if w.topmost {
		barColor = style.TitleBarActiveColor
	}
	dl.FillRect(bar, barColor)

	toggle := w.toggleRect(r)
	w.drawToggle(dl, toggle, style.TitleTextColor)
	labelX := toggle.X + toggle.W
	title := gui.TextWidthEllipsis(ctx, w.params.Title, r.X+r.W-labelX-titlePadding)
	ctx.PushClipRect(bar)
	ctx.AddText(labelX, bar.Y+(bar.H-ctx.LineHeight())/2, title, style.TitleTextColor)
	ctx.PopClipRect()

	if !st.Collapsed && w.content != nil {
		body := gui.Rect{X: r.X + innerMargin, Y: bar.Y + bar.H, W: r.W - innerMargin*2, H: max(0, r.Y+r.H-bar.Y-bar.H-innerMargin)}
		ctx.Region(body, gui.Padding(style.PanelPadding))(func() {
			w.content.Draw(ctx)
		})
	}

	if rx, ry := w.resizable(); w.topmost && (rx || ry) {
		grip := style.ResizeGripColor
		if cornerHovered {
			grip = style.ResizeGripHoveredColor
		}
		w.drawGrip(dl, r, grip)
	}

	if w.opts.DebugLayout {
		dl.StrokeRect(bar, style.DebugColor, 1)
		if w.topmost {
			for _, h := range w.handles(r) {
				dl.StrokeRect(h.rect, style.DebugColor, 1)
			}
		}
	}
}

// drawToggle draws a triangle pointing down when expanded and right when
// collapsed.
func (w *window) drawToggle(dl *gui.DrawList, r gui.Rect, color uint32) {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	s := r.H / 5
	if w.state.Collapsed {
		dl.AddTriangle(cx-s, cy-s*1.2, cx+s, cy, cx-s, cy+s*1.2, color)
		return
	}
	dl.AddTriangle(cx-s*1.2, cy-s, cx+s*1.2, cy-s, cx, cy+s, color)
}

func (w *window) drawGrip(dl *gui.DrawList, r gui.Rect, color uint32) {
	right, bottom := r.X+r.W-innerMargin, r.Y+r.H-innerMargin
	c := w.opts.CornerSize
	for i := float32(1); i <= 3; i++ {
		d := c * i / 4
		dl.AddLine(right-d, bottom, right, bottom-d, color, 1)
	}
}
