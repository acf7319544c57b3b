package gui

// SplitAxis selects how Split divides a rectangle.
type SplitAxis uint8

const (
	SplitVertical   SplitAxis = iota // Side by side, divider is vertical
	SplitHorizontal                  // One above the other, divider is horizontal
)

const splitterThickness = 4

// SplitState persists a splitter's position as a fraction of the split rect.
type SplitState struct {
	Ratio float32
}

// Split divides rect in two along axis with a draggable divider.
// The initial ratio applies until the user drags the divider, after
// which the dragged ratio persists in the state store.
//
//	left, right := ctx.Split("main", rect, gui.SplitVertical, 0.3)
//	ctx.Region(left)(func() { ... })
//	ctx.Region(right)(func() { ... })
func (ctx *Context) Split(id string, rect Rect, axis SplitAxis, ratio float32) (first, second Rect) {
	splitID := ctx.CurrentID().With(id)
	state := GetState(ctx, splitID, SplitState{Ratio: ratio})

	total := rect.W
	if axis == SplitHorizontal {
		total = rect.H
	}
	usable := maxf(0, total-splitterThickness)
	at := usable * clampf(state.Ratio, 0, 1)

	var divider Rect
	if axis == SplitVertical {
		first = Rect{X: rect.X, Y: rect.Y, W: at, H: rect.H}
		divider = Rect{X: rect.X + at, Y: rect.Y, W: splitterThickness, H: rect.H}
		second = Rect{X: divider.X + splitterThickness, Y: rect.Y, W: usable - at, H: rect.H}
	} else {
		first = Rect{X: rect.X, Y: rect.Y, W: rect.W, H: at}
		divider = Rect{X: rect.X, Y: rect.Y + at, W: rect.W, H: splitterThickness}
		second = Rect{X: rect.X, Y: divider.Y + splitterThickness, W: rect.W, H: usable - at}
	}

	resp := ctx.Interact(divider, splitID, SenseDrag)
	color := ctx.style.SplitterColor
	if resp.Hovered || resp.Dragged {
		color = ctx.style.TabHoveredColor
		if axis == SplitVertical {
			ctx.SetCursorIcon(CursorResizeHorizontal)
		} else {
			ctx.SetCursorIcon(CursorResizeVertical)
		}
	}
	if resp.Dragged && usable > 0 {
		delta := resp.DragDelta.X
		if axis == SplitHorizontal {
			delta = resp.DragDelta.Y
		}
		state.Ratio = clampf(state.Ratio+delta/usable, 0.05, 0.95)
	}
	ctx.DrawList.FillRect(divider, color)

	SetState(ctx, splitID, state)
	return first, second
}

// TabGroup draws a tab bar across rect and runs contents for the
// selected tab in the space below it. Each tab's contents run under an
// ID scope named after the tab, so identical widgets in different tabs
// keep separate state.
//
//	ctx.TabGroup("docs", rect, []string{"One", "Two"})(func(tab int) { ... })
func (ctx *Context) TabGroup(id string, rect Rect, tabs []string) func(func(active int)) {
	return func(contents func(active int)) {
		if len(tabs) == 0 {
			return
		}
		groupID := ctx.CurrentID().With(id)
		state := GetState(ctx, groupID, TabGroupState{})
		if state.Active >= len(tabs) {
			state.Active = len(tabs) - 1
		}

		ctx.PushIDValue(groupID)
		barH := ctx.lineHeight() + SpaceXS*2
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, barH, ctx.style.DocumentBarColor)
		ctx.PushClipRect(Rect{X: rect.X, Y: rect.Y, W: rect.W, H: barH})
		x := rect.X
		for i, name := range tabs {
			if ctx.tabButton(name, Vec2{X: x, Y: rect.Y}, i == state.Active) {
				state.Active = i
			}
			x += ctx.MeasureText(name).X + ctx.style.ButtonPadding*2 + SpaceXS
		}
		ctx.PopClipRect()
		ctx.PopID()

		SetState(ctx, groupID, state)

		body := Rect{X: rect.X, Y: rect.Y + barH, W: rect.W, H: maxf(0, rect.H-barH)}
		ctx.PushID(tabs[state.Active])
		ctx.Region(body)(func() {
			contents(state.Active)
		})
		ctx.PopID()
	}
}

// tabButton draws a single tab at pos and returns true if clicked.
func (ctx *Context) tabButton(label string, pos Vec2, selected bool) bool {
	textSize := ctx.MeasureText(label)
	w := textSize.X + ctx.style.ButtonPadding*2
	h := textSize.Y + SpaceXS*2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	resp := ctx.Interact(rect, ctx.CurrentID().With(label), SenseClick)

	bgColor := ctx.style.TabColor
	textColor := ctx.style.TextColor
	switch {
	case selected:
		bgColor = ctx.style.TabActiveColor
		textColor = ctx.style.SelectedTextColor
	case resp.Hovered:
		bgColor = ctx.style.TabHoveredColor
	}

	ctx.DrawList.FillRect(rect, bgColor)
	ctx.AddText(pos.X+(w-textSize.X)/2, pos.Y+(h-textSize.Y)/2, label, textColor)

	return resp.Clicked
}
