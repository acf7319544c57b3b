package toolwindows

import "github.com/go-theft-auto/toolwindows/gui"

var defaultWindowSize = gui.Vec2{X: 300, Y: 200}

// Options holds the geometry of a region's windows.
type Options struct {
	// Scope names the region's z-order in the state store. Regions in
	// the same ID scope with the same Scope are numbered in call order.
	Scope string

	TitleBarHeight float32
	MinSize        gui.Vec2

	// Resize handles straddle the window border.
	EdgeThickness float32
	CornerSize    float32

	// PositionMargin keeps windows from being dragged out of the region.
	PositionMargin float32

	// DebugLayout outlines title bars and resize handles.
	DebugLayout bool
}

func defaultOptions() Options {
	return Options{
		Scope:          "tool_windows",
		TitleBarHeight: 24,
		MinSize:        gui.Vec2{X: 100, Y: 24},
		EdgeThickness:  4,
		CornerSize:     12,
		PositionMargin: 16,
	}
}

// Inner and outer window margins. The window rect grows by both on each
// side of the stored size.
const (
	innerMargin = 2
	outerMargin = 0
)

// Option configures a ToolWindows region.
type Option func(*Options)

// WithScope sets the state scope of the region.
func WithScope(scope string) Option {
	return func(o *Options) { o.Scope = scope }
}

// WithTitleBarHeight sets the title bar height, which is also the height
// of collapsed windows.
func WithTitleBarHeight(h float32) Option {
	return func(o *Options) { o.TitleBarHeight = h }
}

// WithMinSize sets the smallest size a resize can produce.
func WithMinSize(w, h float32) Option {
	return func(o *Options) { o.MinSize = gui.Vec2{X: w, Y: h} }
}

// WithEdgeThickness sets the thickness of the resize edges.
func WithEdgeThickness(t float32) Option {
	return func(o *Options) { o.EdgeThickness = t }
}

// WithPositionMargin sets how much of the region stays reachable when a
// window is moved to its far edges.
func WithPositionMargin(m float32) Option {
	return func(o *Options) { o.PositionMargin = m }
}

// WithDebugLayout outlines the interactive parts of each window.
func WithDebugLayout(on bool) Option {
	return func(o *Options) { o.DebugLayout = on }
}
