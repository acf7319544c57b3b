// Package toolwindows draws floating, collapsible tool windows inside a
// region of an immediate-mode GUI.
//
// Windows are declared every frame through a Builder. Their position,
// size and collapse state, and the z-order of the region, persist in the
// context's state store between frames:
//
//	tw := toolwindows.New()
//	...
//	tw.Windows(ctx, func(b *toolwindows.Builder) {
//	    b.AddWindow("controls").DefaultPos(20, 20).DefaultSize(200, 120).
//	        Show("Controls", func(ctx *gui.Context) { ctx.Text("hello") })
//	})
//
// The region is the context's clip rect when Windows is called. The
// window last in the z-order is drawn last, owns the pointer where it
// overlaps others, and is the only one that can be moved or resized.
package toolwindows

import (
	"slices"

	"github.com/go-theft-auto/toolwindows/gui"
)

// ToolWindows manages the windows of one region.
type ToolWindows struct {
	opts Options

	// region is the ID the last Windows call ran under.
	region gui.ID
	bound  bool
}

// New creates a region manager.
func New(opts ...Option) *ToolWindows {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.MinSize = o.MinSize.Max(gui.Vec2{X: 1, Y: o.TitleBarHeight})
	return &ToolWindows{opts: o}
}

// Options returns the options the region was created with.
func (tw *ToolWindows) Options() Options {
	return tw.opts
}

// RegionID returns the ID under which the region's z-order is stored.
// After Windows it is the ID that call used. Before, it is the ID of the
// first region with these options in the current ID scope of ctx.
func (tw *ToolWindows) RegionID(ctx *gui.Context) gui.ID {
	if tw.bound {
		return tw.region
	}
	return ctx.CurrentID().With(tw.opts.Scope)
}

// WindowID returns the ID of the window declared with salt in this
// region.
func (tw *ToolWindows) WindowID(ctx *gui.Context, salt string) gui.ID {
	return tw.RegionID(ctx).With(salt)
}

// Order returns the persisted z-order of the region, bottom first.
func (tw *ToolWindows) Order(ctx *gui.Context) []gui.ID {
	st, _ := gui.LoadState[StackState](ctx, tw.RegionID(ctx))
	return slices.Clone(st.Order)
}

// State returns the persisted state of a window.
func (tw *ToolWindows) State(ctx *gui.Context, id gui.ID) (WindowState, bool) {
	return gui.LoadState[WindowState](ctx, stateID(id))
}

func stateID(id gui.ID) gui.ID {
	return id.With("##state")
}

// Windows declares this frame's windows through build and draws them in
// z-order inside the current clip rect. Call it once per frame per
// region, after the region's own contents.
func (tw *ToolWindows) Windows(ctx *gui.Context, build func(b *Builder)) {
	// Sibling regions in one ID scope are told apart by call order.
	regionID := ctx.UniqueID(ctx.CurrentID().With(tw.opts.Scope))
	tw.region, tw.bound = regionID, true
	b := &Builder{scope: regionID}
	build(b)

	stack := gui.GetState(ctx, regionID, StackState{})
	stack.Order = slices.Clone(stack.Order)
	removed, added := stack.Sync(b.ids())
	if len(removed) > 0 || len(added) > 0 {
		logger.Debug("tool window stack synced", "region", regionID, "removed", len(removed), "added", len(added), "order", len(stack.Order))
	}

	clip := ctx.ClipRect()
	windows := make([]*window, len(stack.Order))
	for i, id := range stack.Order {
		d, _ := b.lookup(id)
		st, ok := gui.LoadState[WindowState](ctx, stateID(id))
		if !ok {
			st = newWindowState(d.params, tw.opts.MinSize)
		}
		st.Resizable = d.params.Resizable
		// The hit test below must see the rect render will draw.
		st.Position = clampPosition(st.Position, clip.Size(), tw.opts.PositionMargin)
		windows[i] = &window{
			id:      id,
			params:  d.params,
			content: d.content,
			state:   &st,
			opts:    &tw.opts,
		}
	}
	markTopmost(windows, stack.Topmost())

	// A press brings its window forward before anything is drawn, so the
	// window handles the press as the topmost one.
	if ctx.Input != nil && ctx.Input.MouseClicked(gui.MouseButtonLeft) && !ctx.AnyActive() {
		owner := tw.owner(ctx, windows, clip, stack.Order)
		if owner != nil && stack.BringToFront(owner.id) {
			logger.Debug("tool window brought to front", "title", owner.params.Title)
			i := slices.Index(windows, owner)
			windows = append(slices.Delete(windows, i, i+1), owner)
			markTopmost(windows, owner.id)
		}
	}

	for _, w := range windows {
		ctx.PushIDValue(w.id)
		ctx.BeginLayer(w.id, w.hitRect(clip))
		w.render(ctx, clip)
		ctx.EndLayer()
		ctx.PopID()
		gui.SetState(ctx, stateID(w.id), *w.state)
	}

	gui.SetState(ctx, regionID, stack)
}

func markTopmost(windows []*window, top gui.ID) {
	for _, w := range windows {
		w.topmost = w.id == top
	}
}

// owner is the single hit test of the frame: the topmost window whose
// area contains the pointer, or nil. Pointers owned by something drawn
// above the region are nobody's.
func (tw *ToolWindows) owner(ctx *gui.Context, windows []*window, clip gui.Rect, order []gui.ID) *window {
	if ctx.Input == nil {
		return nil
	}
	p := ctx.Input.MousePos()
	if !clip.Contains(p) || !ctx.LayerOwns(p, order...) {
		return nil
	}
	for i := len(windows) - 1; i >= 0; i-- {
		if windows[i].hitRect(clip).Contains(p) {
			return windows[i]
		}
	}
	return nil
}
