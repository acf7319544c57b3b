package gui

// layerEntry records one occlusion layer drawn this frame.
// Later entries are drawn above earlier ones.
type layerEntry struct {
	id     ID
	parent ID
	rect   Rect
}

// BeginLayer opens an occlusion layer covering rect (clipped to the
// current clip). Widgets interacting inside it only see the pointer when
// no layer drawn above it covers the pointer. Layers nest; the base
// layer has ID 0. Hit testing uses the layer order of the previous
// frame, since upper layers are usually drawn after lower content.
func (ctx *Context) BeginLayer(id ID, rect Rect) {
	ctx.layers = append(ctx.layers, layerEntry{id: id, parent: ctx.CurrentLayer(), rect: ctx.ClipRect().Intersect(rect)})
	ctx.layerStack = append(ctx.layerStack, id)
}

// EndLayer closes the layer opened by the matching BeginLayer.
func (ctx *Context) EndLayer() {
	if n := len(ctx.layerStack); n > 0 {
		ctx.layerStack = ctx.layerStack[:n-1]
	}
}

// CurrentLayer returns the innermost open layer, or 0 for the base layer.
func (ctx *Context) CurrentLayer() ID {
	if n := len(ctx.layerStack); n > 0 {
		return ctx.layerStack[n-1]
	}
	return 0
}

// LayerAt returns the topmost layer of the previous frame containing p,
// or 0 when only the base layer is there.
func (ctx *Context) LayerAt(p Vec2) ID {
	for i := len(ctx.prevLayers) - 1; i >= 0; i-- {
		if ctx.prevLayers[i].rect.Contains(p) {
			return ctx.prevLayers[i].id
		}
	}
	return 0
}

func (ctx *Context) knownLayer(id ID) bool {
	if id == 0 {
		return true
	}
	for _, l := range ctx.prevLayers {
		if l.id == id {
			return true
		}
	}
	return false
}

// pointerInLayer reports whether the current layer owns point p.
// A layer that did not exist last frame is let through.
func (ctx *Context) pointerInLayer(p Vec2) bool {
	cur := ctx.CurrentLayer()
	if !ctx.knownLayer(cur) {
		return true
	}
	return ctx.LayerAt(p) == cur
}

// LayerOwns reports whether the pointer at p belongs to the current
// layer itself, or to one of the given child layers or a layer nested in
// one of them, judged by last frame's layers. Other layers nested in the
// current one block it. A current layer unknown last frame owns
// everything.
func (ctx *Context) LayerOwns(p Vec2, children ...ID) bool {
	cur := ctx.CurrentLayer()
	if !ctx.knownLayer(cur) {
		return true
	}
	id := ctx.LayerAt(p)
	if id == cur {
		return true
	}
	// Depth is bounded by the number of layers, which also guards
	// against cycles.
	for n := len(ctx.prevLayers); n > 0; n-- {
		for _, c := range children {
			if id == c {
				return true
			}
		}
		if id == cur || id == 0 {
			return false
		}
		id = ctx.parentLayer(id)
	}
	return false
}

func (ctx *Context) parentLayer(id ID) ID {
	for _, l := range ctx.prevLayers {
		if l.id == id {
			return l.parent
		}
	}
	return 0
}
