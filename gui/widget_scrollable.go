package gui

const (
	scrollWheelStep = 30
	minThumbSize    = 20
)

// ScrollArea creates a scrollable area that can wrap any content.
// It fills the remaining space of the current layout unless WithWidth or
// WithHeight is given. Scroll offsets persist in the state store.
//
// Usage:
//
//	ctx.ScrollArea("content", gui.EnableHorizontal(), gui.ShowScrollbar(true))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Button("Click me")
//	})
func (ctx *Context) ScrollArea(id string, opts ...Option) func(func()) {
	return func(contents func()) {
		o := applyOptions(opts)

		ctx.beginItem()
		avail := ctx.AvailableRect()
		x, y := avail.X, avail.Y
		w, h := avail.W, avail.H
		if width := GetOpt(o, OptWidth); width > 0 {
			w = width
		}
		if height := GetOpt(o, OptHeight); height > 0 {
			h = height
		}

		scrollID := ctx.CurrentID().With(id)
		state := GetState(ctx, scrollID, ScrollableState{})

		vertical := GetOpt(o, OptVerticalScroll)
		horizontal := GetOpt(o, OptHorizontalScroll)
		visibility := GetOpt(o, OptScrollbarVisibility)

		sb := ctx.style.ScrollbarSize
		showV := vertical && visibility != ScrollbarNever &&
			(visibility == ScrollbarAlways || state.ContentHeight > h)
		showH := horizontal && visibility != ScrollbarNever &&
			(visibility == ScrollbarAlways || state.ContentWidth > w)

		viewW, viewH := w, h
		if showV {
			viewW -= sb
		}
		if showH {
			viewH -= sb
		}
		viewW, viewH = maxf(0, viewW), maxf(0, viewH)
		viewport := Rect{X: x, Y: y, W: viewW, H: viewH}

		maxY := maxf(0, state.ContentHeight-viewH)
		maxX := maxf(0, state.ContentWidth-viewW)
		state.ScrollY = clampf(state.ScrollY, 0, maxY)
		state.ScrollX = clampf(state.ScrollX, 0, maxX)
		if !vertical {
			state.ScrollY = 0
		}
		if !horizontal {
			state.ScrollX = 0
		}

		saved := ctx.cursor
		ctx.PushID(id)
		ctx.PushClipRect(viewport)
		ctx.cursor = Vec2{X: x - state.ScrollX, Y: y - state.ScrollY}
		layout := &Layout{
			Type:   LayoutVertical,
			StartX: ctx.cursor.X,
			StartY: ctx.cursor.Y,
			Width:  viewW,
			Height: viewH,
			Gap:    ctx.style.ItemSpacing,
		}
		ctx.layoutStack = append(ctx.layoutStack, layout)

		contents()

		ctx.layoutStack = ctx.layoutStack[:len(ctx.layoutStack)-1]
		ctx.PopClipRect()
		ctx.PopID()
		ctx.cursor = saved

		state.ContentHeight = layout.MaxHeight
		state.ContentWidth = layout.MaxWidth
		maxY = maxf(0, state.ContentHeight-viewH)
		maxX = maxf(0, state.ContentWidth-viewW)

		// Inner areas run first, so the innermost hovered area takes the wheel.
		hover := ctx.Interact(viewport, scrollID, SenseHover)
		if hover.Hovered && !ctx.wheelConsumed && ctx.Input != nil {
			wheelX, wheelY := ctx.Input.MouseWheelX, ctx.Input.MouseWheelY
			if vertical && wheelY != 0 && maxY > 0 {
				state.ScrollY = clampf(state.ScrollY-wheelY*scrollWheelStep, 0, maxY)
				ctx.wheelConsumed = true
			}
			if horizontal && wheelX != 0 && maxX > 0 {
				state.ScrollX = clampf(state.ScrollX-wheelX*scrollWheelStep, 0, maxX)
				ctx.wheelConsumed = true
			}
		}

		if showV {
			track := Rect{X: x + viewW, Y: y, W: sb, H: viewH}
			state.ScrollY = ctx.scrollbar(scrollID.With("v"), track, true, state.ScrollY, state.ContentHeight, viewH, &state)
		}
		if showH {
			track := Rect{X: x, Y: y + viewH, W: viewW, H: sb}
			state.ScrollX = ctx.scrollbar(scrollID.With("h"), track, false, state.ScrollX, state.ContentWidth, viewW, &state)
		}

		SetState(ctx, scrollID, state)
		ctx.AdvanceCursor(Vec2{X: w, Y: h})
	}
}

// scrollbar draws one scrollbar in track and handles thumb dragging and
// paging clicks on the track. It returns the new scroll offset.
func (ctx *Context) scrollbar(id ID, track Rect, vertical bool, scroll, content, view float32, state *ScrollableState) float32 {
	ctx.DrawList.FillRect(track, ctx.style.ScrollbarBgColor)
	if content <= view || view <= 0 {
		return 0
	}

	length := track.W
	if vertical {
		length = track.H
	}
	maxScroll := content - view
	thumbLen := minf(length, maxf(minThumbSize, length*view/content))
	travel := length - thumbLen
	thumbPos := float32(0)
	if maxScroll > 0 {
		thumbPos = scroll / maxScroll * travel
	}

	thumb := Rect{X: track.X + thumbPos, Y: track.Y, W: thumbLen, H: track.H}
	if vertical {
		thumb = Rect{X: track.X, Y: track.Y + thumbPos, W: track.W, H: thumbLen}
	}

	resp := ctx.Interact(thumb, id.With("thumb"), SenseDrag)
	pointer := resp.PointerPos.X
	if vertical {
		pointer = resp.PointerPos.Y
	}
	switch {
	case resp.DragStarted:
		state.DragStartScr = scroll
		if vertical {
			state.DragStartY = pointer
		} else {
			state.DragStartX = pointer
		}
	case resp.Dragged && travel > 0:
		start := state.DragStartX
		if vertical {
			start = state.DragStartY
		}
		scroll = clampf(state.DragStartScr+(pointer-start)*maxScroll/travel, 0, maxScroll)
	}

	thumbStart := thumb.X
	if vertical {
		thumbStart = thumb.Y
	}
	page := ctx.Interact(track, id.With("track"), SenseClick)
	if page.Pressed && !resp.Pressed {
		if pointer < thumbStart {
			scroll = clampf(scroll-view, 0, maxScroll)
		} else {
			scroll = clampf(scroll+view, 0, maxScroll)
		}
	}

	color := ctx.style.ScrollbarGrabColor
	if resp.Hovered || resp.Dragged {
		color = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.FillRect(thumb, color)
	return scroll
}
