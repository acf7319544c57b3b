package gui

// Option configures a UI widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptCustomThing = gui.NewOptKey("customThing", defaultValue)
//	ctx.MyWidget("id", gui.WithOpt(OptCustomThing, value))
//	value := gui.ApplyAndGet(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ScrollbarVisibility controls when scrollbars are shown.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // Show only when content exceeds viewport
	ScrollbarAlways                            // Always show scrollbar
	ScrollbarNever                             // Never show scrollbar
)

var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)

	OptDragSpeed = NewOptKey[float32]("dragSpeed", 0)
	OptFormat    = NewOptKey("format", "")

	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptHorizontalScroll    = NewOptKey("horizontalScroll", false)
	OptVerticalScroll      = NewOptKey("verticalScroll", true)
)

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithDragSpeed sets the value change per pixel of drag.
func WithDragSpeed(speed float32) Option { return WithOpt(OptDragSpeed, speed) }

// WithFormat sets the display format for numeric values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// ShowScrollbar controls scrollbar visibility.
func ShowScrollbar(always bool) Option {
	if always {
		return WithOpt(OptScrollbarVisibility, ScrollbarAlways)
	}
	return WithOpt(OptScrollbarVisibility, ScrollbarAuto)
}

// EnableHorizontal enables horizontal scrolling.
func EnableHorizontal() Option { return WithOpt(OptHorizontalScroll, true) }

// DisableVertical turns off vertical scrolling.
func DisableVertical() Option { return WithOpt(OptVerticalScroll, false) }

// widgetID resolves the ID for a widget: an explicit WithID wins over
// the call-order ID derived from the label.
func (ctx *Context) widgetID(label string, o options) ID {
	if explicit := GetOpt(o, OptID); explicit != "" {
		return ctx.CurrentID().With(explicit)
	}
	return ctx.GetID(label)
}
