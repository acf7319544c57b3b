package toolwindows

import "github.com/go-theft-auto/toolwindows/gui"

// Drawable draws a window's contents.
type Drawable interface {
	Draw(ctx *gui.Context)
}

// ContentFunc adapts a function to Drawable.
type ContentFunc func(ctx *gui.Context)

// Draw calls f.
func (f ContentFunc) Draw(ctx *gui.Context) { f(ctx) }

// Parameters describe a window for one frame. They are not persisted;
// defaults only apply the first time a window appears.
type Parameters struct {
	Title          string
	DefaultPos     gui.Vec2
	DefaultSize    gui.Vec2
	HasDefaultSize bool
	Resizable      [2]bool
}

// declaration is one window declared this frame.
type declaration struct {
	id      gui.ID
	params  Parameters
	content Drawable
}

// Builder collects the windows declared for one frame.
type Builder struct {
	scope gui.ID
	decls []declaration
}

// AddWindow starts declaring a window identified by salt within the
// region. The window is declared once Show or ShowDrawable is called.
func (b *Builder) AddWindow(salt string) *WindowBuilder {
	return b.add(b.scope.With(salt))
}

// AddWindowID is AddWindow for an already derived ID, such as
// gui.HashID("table").With(tabName). The ID is still scoped by the
// region.
func (b *Builder) AddWindowID(id gui.ID) *WindowBuilder {
	return b.add(b.scope.WithInt(int(id)))
}

func (b *Builder) add(id gui.ID) *WindowBuilder {
	return &WindowBuilder{
		b:  b,
		id: id,
		params: Parameters{
			Resizable: [2]bool{true, true},
		},
	}
}

func (b *Builder) declared(id gui.ID) bool {
	for _, d := range b.decls {
		if d.id == id {
			return true
		}
	}
	return false
}

// ids returns the declared windows in declaration order.
func (b *Builder) ids() []gui.ID {
	ids := make([]gui.ID, len(b.decls))
	for i, d := range b.decls {
		ids[i] = d.id
	}
	return ids
}

func (b *Builder) lookup(id gui.ID) (declaration, bool) {
	for _, d := range b.decls {
		if d.id == id {
			return d, true
		}
	}
	return declaration{}, false
}

// WindowBuilder declares one window.
type WindowBuilder struct {
	b      *Builder
	id     gui.ID
	params Parameters
}

// DefaultPos sets the position, relative to the region, used the first
// time the window appears.
func (w *WindowBuilder) DefaultPos(x, y float32) *WindowBuilder {
	w.params.DefaultPos = gui.Vec2{X: x, Y: y}
	return w
}

// DefaultSize sets the size used the first time the window appears.
func (w *WindowBuilder) DefaultSize(width, height float32) *WindowBuilder {
	w.params.DefaultSize = gui.Vec2{X: width, Y: height}
	w.params.HasDefaultSize = true
	return w
}

// Resizable sets which axes can be resized. Both are by default.
func (w *WindowBuilder) Resizable(x, y bool) *WindowBuilder {
	w.params.Resizable = [2]bool{x, y}
	return w
}

// Show declares the window with a title and contents.
func (w *WindowBuilder) Show(title string, fn ContentFunc) {
	w.ShowDrawable(title, fn)
}

// ShowDrawable declares the window with a title and contents. A window
// whose ID was already declared this frame is dropped.
func (w *WindowBuilder) ShowDrawable(title string, d Drawable) {
	if w.b.declared(w.id) {
		logger.Debug("duplicate tool window dropped", "id", w.id, "title", title)
		return
	}
	w.params.Title = title
	w.b.decls = append(w.b.decls, declaration{id: w.id, params: w.params, content: d})
}
