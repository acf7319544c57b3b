package demo

import (
	"github.com/go-theft-auto/toolwindows/gui"
	"github.com/go-theft-auto/toolwindows/internal/config"
	"github.com/go-theft-auto/toolwindows/toolwindows"
)

const frameMargin = 40

const hint = "Drag a title bar to move a tool window, click its arrow to collapse it."

// Simple shows the configured tool windows inside a framed scroll area
// over some text.
func Simple(ctx *gui.Context, a *App, bounds gui.Rect) {
	ctx.Region(inset(bounds, frameMargin))(func() {
		ctx.Frame()(func() {
			ctx.ScrollArea("content", gui.EnableHorizontal(), gui.ShowScrollbar(true))(func() {
				ctx.Text("Content inside a frame")
				ctx.TextDisabled(hint)
				ctx.TextWrapped(LoremIpsum, 0)

				a.ToolWindows().Windows(ctx, func(b *toolwindows.Builder) {
					DeclareWindows(b, a.Config.ToolWindows, a.State)
				})
			})
		})
	})
}

// nestedWindows are the tool windows placed inside documents and tabs.
var nestedWindows = []config.ToolWindowConfig{
	{
		Salt:        "table_tool_window_1",
		Title:       "Example table (drag or collapse me)",
		Content:     config.ContentTable,
		DefaultPos:  &[2]float32{50, 50},
		DefaultSize: &[2]float32{400, 300},
	},
	{
		Salt:        "control_tool_window_1",
		Title:       "Example controls (drag or collapse me) - very very long title",
		Content:     config.ContentControls,
		DefaultPos:  &[2]float32{100, 100},
		DefaultSize: &[2]float32{400, 300},
	},
}

// InsideWindows shows tool windows inside one of three movable document
// windows.
func InsideWindows(ctx *gui.Context, a *App, bounds gui.Rect) {
	ctx.Region(bounds, gui.Padding(ctx.Style().PanelPadding))(func() {
		ctx.Text("Example document system!")
		ctx.TextDisabled(hint)
	})

	docs := []gui.Document{
		{
			Title:       "Document 1",
			DefaultPos:  gui.Vec2{X: 250, Y: 100},
			DefaultSize: gui.Vec2{X: 300, Y: 200},
			Draw:        func() { DrawExampleContents(ctx, a.State) },
		},
		{
			Title:       "Document 2",
			DefaultPos:  gui.Vec2{X: 350, Y: 150},
			DefaultSize: gui.Vec2{X: 300, Y: 200},
			Draw:        func() { DrawTable(ctx, "table_1") },
		},
		{
			Title:       "Document 3",
			DefaultPos:  gui.Vec2{X: 150, Y: 200},
			DefaultSize: gui.Vec2{X: 800, Y: 400},
			Draw: func() {
				ctx.ScrollArea("content", gui.EnableHorizontal(), gui.ShowScrollbar(true))(func() {
					a.ToolWindows().Windows(ctx, func(b *toolwindows.Builder) {
						DeclareWindows(b, nestedWindows, a.State)
					})
				})
			},
		},
	}
	ctx.DocumentWindows("documents", bounds, docs, gui.WithMinSize(200, 100))
}

var dockTabs = []string{"Tool windows in a tab", "More tool windows", "Example Table"}

// InsideDock shows tool windows inside tabs of a split dock area. The
// two tool window tabs declare the same windows under different salts.
func InsideDock(ctx *gui.Context, a *App, bounds gui.Rect) {
	left, right := ctx.Split("dock", bounds, gui.SplitVertical, 0.3)
	top, bottom := ctx.Split("dock_left", left, gui.SplitHorizontal, 0.7)

	ctx.TabGroup("left_top", top, []string{"Example Table"})(func(int) {
		DrawTable(ctx, "table_1")
	})
	ctx.TabGroup("left_bottom", bottom, []string{"Example Controls"})(func(int) {
		DrawExampleContents(ctx, a.tabState("controls"))
	})
	ctx.TabGroup("main", right, dockTabs)(func(tab int) {
		switch tab {
		case 0:
			toolWindowsTab(ctx, a, "tab 1")
		case 1:
			toolWindowsTab(ctx, a, "tab 4")
		default:
			DrawTable(ctx, "table_1")
		}
	})
}

func toolWindowsTab(ctx *gui.Context, a *App, salt string) {
	state := a.tabState(salt)
	ctx.ScrollArea("content", gui.EnableHorizontal(), gui.ShowScrollbar(true))(func() {
		DrawExampleContents(ctx, state)
		DrawTable(ctx, "table_2")

		a.ToolWindows().Windows(ctx, func(b *toolwindows.Builder) {
			b.AddWindowID(gui.HashID("table_tool_window_1").With(salt)).
				DefaultPos(50, 50).
				DefaultSize(400, 300).
				Show("Example table 1 (drag or collapse me)", func(ctx *gui.Context) {
					DrawTable(ctx, "table_3")
				})
			b.AddWindowID(gui.HashID("controls_tool_window_1").With(salt)).
				DefaultPos(100, 100).
				DefaultSize(400, 300).
				Show("Example table 2 (drag or collapse me) - very very long title", func(ctx *gui.Context) {
					DrawExampleContents(ctx, state)
				})
		})
	})
}
