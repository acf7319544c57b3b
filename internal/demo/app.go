package demo

import (
	"github.com/go-theft-auto/toolwindows/gui"
	"github.com/go-theft-auto/toolwindows/internal/config"
	"github.com/go-theft-auto/toolwindows/toolwindows"
)

// Scene draws one demo inside bounds.
type Scene func(ctx *gui.Context, a *App, bounds gui.Rect)

// App is the state a demo keeps between frames.
type App struct {
	Config *config.Config
	State  *ExampleState

	// Inspection outlines the interactive parts of every tool window.
	Inspection bool

	tabStates map[string]*ExampleState
}

// NewApp creates the demo state for cfg.
func NewApp(cfg *config.Config) *App {
	return &App{
		Config:     cfg,
		State:      &ExampleState{},
		Inspection: cfg.DebugLayout,
		tabStates:  make(map[string]*ExampleState),
	}
}

// Frame draws the top bar and the scene below it.
func (a *App) Frame(ctx *gui.Context, scene Scene, bounds gui.Rect) {
	bar := gui.Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: ctx.LineHeight() + ctx.Style().PanelPadding*2}
	ctx.DrawList.FillRect(bar, ctx.Style().PanelColor)
	ctx.Region(bar, gui.Padding(ctx.Style().PanelPadding))(func() {
		ctx.HStack(gui.Gap(16))(func() {
			ctx.Text(a.Config.Window.Title)
			ctx.Checkbox("Inspection", &a.Inspection)
		})
	})

	rest := gui.Rect{X: bounds.X, Y: bar.Y + bar.H, W: bounds.W, H: max(0, bounds.H-bar.H)}
	ctx.Region(rest)(func() {
		scene(ctx, a, rest)
	})
}

// ToolWindows returns a region manager honouring the inspection toggle.
func (a *App) ToolWindows() *toolwindows.ToolWindows {
	return toolwindows.New(toolwindows.WithDebugLayout(a.Inspection))
}

// tabState returns the example state owned by one dock tab.
func (a *App) tabState(salt string) *ExampleState {
	s, ok := a.tabStates[salt]
	if !ok {
		s = &ExampleState{}
		a.tabStates[salt] = s
	}
	return s
}

// DeclareWindows declares the configured tool windows. Windows showing
// example controls edit state.
func DeclareWindows(b *toolwindows.Builder, windows []config.ToolWindowConfig, state *ExampleState) {
	for _, w := range windows {
		wb := b.AddWindow(w.Salt)
		if w.DefaultPos != nil {
			wb = wb.DefaultPos(w.DefaultPos[0], w.DefaultPos[1])
		}
		if w.DefaultSize != nil {
			wb = wb.DefaultSize(w.DefaultSize[0], w.DefaultSize[1])
		}
		if w.Resizable != nil {
			wb = wb.Resizable(w.Resizable[0], w.Resizable[1])
		}
		wb.Show(w.Title, windowContent(w.Content, w.Salt, state))
	}
}

func windowContent(kind, salt string, state *ExampleState) toolwindows.ContentFunc {
	switch kind {
	case config.ContentControls:
		return func(ctx *gui.Context) { DrawExampleContents(ctx, state) }
	case config.ContentLorem:
		return func(ctx *gui.Context) { ctx.TextWrapped(LoremIpsum, 0) }
	default:
		return func(ctx *gui.Context) { DrawTable(ctx, salt) }
	}
}

func inset(r gui.Rect, m float32) gui.Rect {
	return gui.Rect{X: r.X + m, Y: r.Y + m, W: max(0, r.W-2*m), H: max(0, r.H-2*m)}
}
