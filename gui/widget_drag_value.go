package gui

import "fmt"

// dragValueStore holds in-progress drags; a drag only lives while the
// widget is on screen.
var dragValueStore = NewFrameStore[DragValueState]()

// DragValue draws a numeric field changed by dragging horizontally.
// Each pixel of drag changes the value by the drag speed (default 1).
// Returns true if the value changed.
//
//	ctx.DragValue("drag me", &state.Number, gui.WithDragSpeed(0.1))
func (ctx *Context) DragValue(label string, value *float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	speed := GetOpt(o, OptDragSpeed)
	if speed == 0 {
		speed = 1
	}
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.1f"
	}

	text := fmt.Sprintf(format, *value)
	textSize := ctx.MeasureText(text)
	pad := ctx.style.ButtonPadding / 2
	w := maxf(GetOpt(o, OptWidth), textSize.X+pad*2)
	h := textSize.Y + pad*2
	box := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	resp := ctx.Interact(box, id, SenseDrag)
	if resp.Hovered || resp.Dragged {
		ctx.SetCursorIcon(CursorResizeHorizontal)
	}

	changed := false
	switch {
	case resp.DragStarted:
		state := dragValueStore.Get(id, DragValueState{})
		state.StartValue = *value
		state.StartX = resp.PointerPos.X
	case resp.Dragged:
		state := dragValueStore.Get(id, DragValueState{StartValue: *value, StartX: resp.PointerPos.X})
		newValue := state.StartValue + (resp.PointerPos.X-state.StartX)*speed
		if newValue != *value {
			*value = newValue
			changed = true
		}
	case resp.DragStopped:
		dragValueStore.Delete(id)
	}

	bg := ctx.style.InputBgColor
	if resp.Hovered || resp.Dragged {
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.FillRect(box, bg)
	ctx.DrawList.StrokeRect(box, ctx.style.InputBorderColor, 1)
	ctx.AddText(box.X+(w-textSize.X)/2, box.Y+pad, text, ctx.style.TextColor)

	total := Vec2{X: w, Y: h}
	if label != "" {
		lx := box.X + w + ctx.style.ItemSpacing
		ctx.AddText(lx, box.Y+pad, label, ctx.style.TextColor)
		total.X += ctx.style.ItemSpacing + ctx.MeasureText(label).X
	}

	ctx.AdvanceCursor(total)
	return changed
}
