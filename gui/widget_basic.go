package gui

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// TextWrapped draws text with automatic word wrapping.
// maxWidth specifies the maximum line width (0 = use current layout width).
func (ctx *Context) TextWrapped(text string, maxWidth float32) {
	if maxWidth <= 0 {
		maxWidth = ctx.AvailableRect().W
	}

	lines := WrapText(ctx, text, maxWidth, WrapModeWord)
	if len(lines) == 0 {
		return
	}

	pos := ctx.ItemPos()
	lineH := ctx.lineHeight()
	w := float32(0)
	for i, line := range lines {
		ctx.AddText(pos.X, pos.Y+float32(i)*lineH, line, ctx.style.TextColor)
		w = maxf(w, ctx.MeasureText(line).X)
	}

	ctx.AdvanceCursor(Vec2{X: w, Y: float32(len(lines)) * lineH})
}

// Heading draws wrapped text at twice the normal font scale.
func (ctx *Context) Heading(text string) {
	saved := ctx.style
	ctx.style.FontScale *= 2
	ctx.style.TextColor = saved.HeadingColor
	ctx.TextWrapped(text, 0)
	ctx.style = saved
}

// LabelText draws a label and value side by side.
func (ctx *Context) LabelText(label, value string) {
	ctx.HStack()(func() {
		ctx.Text(label)
		ctx.Text(value)
	})
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	rect := RectFromMinSize(pos, size)
	disabled := GetOpt(o, OptDisabled)

	var resp Response
	if !disabled {
		resp = ctx.Interact(rect, id, SenseClick)
	}

	bgColor := ctx.style.ButtonColor
	if resp.Hovered {
		bgColor = ctx.style.ButtonHoveredColor
	}
	if ctx.IsActive(id) || resp.Pressed {
		bgColor = ctx.style.ButtonActiveColor
	}
	ctx.DrawList.FillRect(rect, bgColor)

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, textColor)

	ctx.AdvanceCursor(size)
	return resp.Clicked
}

// Selectable draws a selectable label. Returns true if clicked.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	textSize := ctx.MeasureText(label)
	pad := ctx.style.ButtonPadding / 2
	size := Vec2{X: textSize.X + pad*2, Y: textSize.Y + pad*2}
	rect := RectFromMinSize(pos, size)

	resp := ctx.Interact(rect, id, SenseClick)

	textColor := ctx.style.TextColor
	switch {
	case selected:
		ctx.DrawList.FillRect(rect, ctx.style.SelectedBgColor)
		textColor = ctx.style.SelectedTextColor
	case resp.Hovered:
		ctx.DrawList.FillRect(rect, ctx.style.HoveredBgColor)
	}
	ctx.AddText(pos.X+pad, pos.Y+pad, label, textColor)

	ctx.AdvanceCursor(size)
	return resp.Clicked
}

// ToggleValue draws a selectable label bound to value and flips it on
// click. Returns true if the value changed.
func (ctx *Context) ToggleValue(label string, value *bool, opts ...Option) bool {
	if ctx.Selectable(label, *value, opts...) {
		*value = !*value
		return true
	}
	return false
}

// Checkbox draws a checkbox with label.
// Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	boxSize := ctx.lineHeight()
	totalWidth := boxSize + ctx.style.ItemSpacing + ctx.MeasureText(label).X
	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}

	disabled := GetOpt(o, OptDisabled)
	var resp Response
	if !disabled {
		resp = ctx.Interact(rect, id, SenseClick)
	}

	boxColor := ctx.style.InputBgColor
	if resp.Hovered {
		boxColor = ctx.style.HoveredBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, boxSize, boxSize, ctx.style.InputBorderColor, 1)

	if *value {
		padding := boxSize * 0.2
		x1, y1 := pos.X+padding, pos.Y+padding
		x2, y2 := pos.X+boxSize-padding, pos.Y+boxSize-padding
		ctx.DrawList.AddLine(x1, y1, x2, y2, ctx.style.CheckColor, 2)
		ctx.DrawList.AddLine(x1, y2, x2, y1, ctx.style.CheckColor, 2)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(pos.X+boxSize+ctx.style.ItemSpacing, pos.Y, label, textColor)

	changed := false
	if resp.Clicked {
		*value = !*value
		changed = true
	}

	ctx.AdvanceCursor(Vec2{X: totalWidth, Y: boxSize})
	return changed
}
