package toolwindows_test

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/toolwindows/gui"
	"github.com/go-theft-auto/toolwindows/toolwindows"
)

type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	dl.Finalize()
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }

func (m *mockRenderer) Resize(width, height int) {}

// harness drives whole frames of one tool window region.
type harness struct {
	t     *testing.T
	ui    *gui.GUI
	in    *gui.InputState
	tw    *toolwindows.ToolWindows
	ctx   *gui.Context
	build func(b *toolwindows.Builder)
}

func newHarness(t *testing.T, build func(b *toolwindows.Builder), opts ...toolwindows.Option) *harness {
	t.Helper()
	return &harness{
		t:     t,
		ui:    gui.New(&mockRenderer{}),
		in:    gui.NewInputState(),
		tw:    toolwindows.New(opts...),
		build: build,
	}
}

// frame runs one frame after applying input.
func (h *harness) frame(input func(in *gui.InputState)) {
	h.t.Helper()
	h.in.Reset()
	if input != nil {
		input(h.in)
	}
	h.ctx = h.ui.Begin(h.in, gui.Vec2{X: 800, Y: 600}, 0.016)
	h.tw.Windows(h.ctx, h.build)
	if err := h.ui.End(); err != nil {
		h.t.Fatalf("End() returned error: %v", err)
	}
}

func (h *harness) moveTo(x, y float32) {
	h.frame(func(in *gui.InputState) { in.SetMousePos(x, y) })
}

func (h *harness) press(x, y float32) {
	h.frame(func(in *gui.InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(gui.MouseButtonLeft, true)
	})
}

func (h *harness) release(x, y float32) {
	h.frame(func(in *gui.InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(gui.MouseButtonLeft, false)
	})
}

func (h *harness) click(x, y float32) {
	h.press(x, y)
	h.release(x, y)
}

func (h *harness) id(salt string) gui.ID {
	return h.tw.WindowID(h.ctx, salt)
}

func (h *harness) order() []gui.ID {
	return h.tw.Order(h.ctx)
}

func (h *harness) state(salt string) toolwindows.WindowState {
	h.t.Helper()
	st, ok := h.tw.State(h.ctx, h.id(salt))
	if !ok {
		h.t.Fatalf("no state for window %q", salt)
	}
	return st
}

func twoWindows(b *toolwindows.Builder) {
	b.AddWindow("A").DefaultPos(0, 0).DefaultSize(200, 100).Show("A", func(*gui.Context) {})
	b.AddWindow("B").DefaultPos(50, 50).Show("B", func(*gui.Context) {})
}

func TestFirstFrameOrder(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)

	want := []gui.ID{h.id("A"), h.id("B")}
	if got := h.order(); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestClickBringsWindowToFront(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)

	h.press(20, 60)
	want := []gui.ID{h.id("B"), h.id("A")}
	if got := h.order(); !slices.Equal(got, want) {
		t.Fatalf("order after click = %v, want %v", got, want)
	}
	h.release(20, 60)

	// A shows its right edge handle now.
	h.moveTo(203, 30)
	if got := h.ui.CursorIcon(); got != gui.CursorResizeHorizontal {
		t.Errorf("cursor over A's right edge = %v, want %v", got, gui.CursorResizeHorizontal)
	}

	// B does not.
	h.moveTo(352, 150)
	if got := h.ui.CursorIcon(); got != gui.CursorDefault {
		t.Errorf("cursor over B's right edge = %v, want %v", got, gui.CursorDefault)
	}
}

func TestClickOnOverlapGoesToTopmost(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)

	// (100, 80) is inside both windows; B is on top.
	h.click(100, 80)
	want := []gui.ID{h.id("A"), h.id("B")}
	if got := h.order(); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRemovedWindow(t *testing.T) {
	withA := true
	h := newHarness(t, func(b *toolwindows.Builder) {
		if withA {
			b.AddWindow("A").DefaultPos(0, 0).DefaultSize(200, 100).Show("A", func(*gui.Context) {})
		}
		b.AddWindow("B").DefaultPos(50, 50).Show("B", func(*gui.Context) {})
	})
	h.frame(nil)
	before := h.state("A")

	withA = false
	h.frame(nil)
	if got, want := h.order(), []gui.ID{h.id("B")}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	// A press where A used to be does not touch its state.
	h.click(20, 20)
	if after := h.state("A"); after.Position != before.Position || after.Size != before.Size {
		t.Errorf("removed window state changed from %+v to %+v", before, after)
	}
}

func TestNewWindowIsAddedOnTop(t *testing.T) {
	withC := false
	h := newHarness(t, func(b *toolwindows.Builder) {
		twoWindows(b)
		if withC {
			b.AddWindow("C").Show("C", func(*gui.Context) {})
		}
	})
	h.frame(nil)
	h.click(20, 60) // A to front

	withC = true
	h.frame(nil)
	want := []gui.ID{h.id("B"), h.id("A"), h.id("C")}
	if got := h.order(); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestDragTitleBar(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)

	// Bring A to front, then drag it by its title bar.
	h.click(100, 10)
	h.press(100, 10)
	h.frame(func(in *gui.InputState) { in.SetMousePos(150, 40) })
	if got := h.ui.CursorIcon(); got != gui.CursorMove {
		t.Errorf("cursor while dragging = %v, want %v", got, gui.CursorMove)
	}
	h.release(150, 40)

	if got, want := h.state("A").Position, (gui.Vec2{X: 50, Y: 30}); got != want {
		t.Errorf("position = %v, want %v", got, want)
	}
	if h.state("A").Drag != nil {
		t.Error("drag state should be cleared after release")
	}
}

func TestDragIsClamped(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)
	h.click(100, 10)

	h.press(100, 10)
	h.frame(func(in *gui.InputState) { in.SetMousePos(-400, 5000) })
	h.release(-400, 5000)

	st := h.state("A")
	if st.Position.X != 0 || st.Position.Y != 600-16 {
		t.Errorf("position = %v, want clamped to (0, 584)", st.Position)
	}
}

func TestPressOnLowerTitleBarStartsDrag(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)

	// B is topmost. A press on A's title bar brings A forward and
	// starts the drag in the same frame.
	h.press(30, 10)
	h.frame(func(in *gui.InputState) { in.SetMousePos(40, 20) })
	h.release(40, 20)

	if got, want := h.state("A").Position, (gui.Vec2{X: 10, Y: 10}); got != want {
		t.Errorf("position = %v, want %v", got, want)
	}
	if got := h.state("B").Position; got != (gui.Vec2{X: 50, Y: 50}) {
		t.Errorf("B moved to %v", got)
	}
}

func TestResizeFromRightEdge(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)
	h.click(20, 60)

	h.press(203, 30)
	h.frame(func(in *gui.InputState) { in.SetMousePos(253, 30) })
	h.release(253, 30)

	if got := h.state("A").Size; got != (gui.Vec2{X: 250, Y: 100}) {
		t.Errorf("size = %v, want 250x100", got)
	}
}

func TestResizeFromLeftEdgeHitsFloor(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)
	h.click(20, 60)

	h.press(1, 30)
	h.frame(func(in *gui.InputState) { in.SetMousePos(500, 30) })
	h.release(500, 30)

	st := h.state("A")
	if st.Size.X != 100 {
		t.Errorf("width = %v, want the 100 floor", st.Size.X)
	}
	if st.Position.X+st.Size.X != 200 {
		t.Errorf("right edge moved to %v", st.Position.X+st.Size.X)
	}
}

func TestResizeWithCustomMinSize(t *testing.T) {
	h := newHarness(t, twoWindows, toolwindows.WithMinSize(150, 80))
	h.frame(nil)
	h.click(20, 60)

	// Bottom-right corner.
	h.press(200, 100)
	h.frame(func(in *gui.InputState) { in.SetMousePos(0, 0) })
	h.release(0, 0)

	if got := h.state("A").Size; got != (gui.Vec2{X: 150, Y: 80}) {
		t.Errorf("size = %v, want the 150x80 floor", got)
	}
}

func TestNotResizable(t *testing.T) {
	h := newHarness(t, func(b *toolwindows.Builder) {
		b.AddWindow("A").DefaultSize(200, 100).Resizable(false, false).Show("A", func(*gui.Context) {})
	})
	h.frame(nil)
	h.moveTo(203, 30)
	if got := h.ui.CursorIcon(); got != gui.CursorDefault {
		t.Errorf("cursor = %v, want %v", got, gui.CursorDefault)
	}
}

func TestCollapseToggleIsIdempotent(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)
	h.click(20, 60)
	before := h.state("A")

	h.click(10, 10)
	st := h.state("A")
	if !st.Collapsed {
		t.Fatal("expected A to be collapsed")
	}
	if st.Size != before.Size {
		t.Errorf("collapsed size = %v, want %v kept", st.Size, before.Size)
	}

	h.click(10, 10)
	after := h.state("A")
	if after.Collapsed {
		t.Fatal("expected A to be expanded")
	}
	if after.Size != before.Size || after.Position != before.Position {
		t.Errorf("after two toggles %+v, want %+v", after, before)
	}
}

func TestCollapsedWindowReleasesItsBody(t *testing.T) {
	h := newHarness(t, twoWindows)
	h.frame(nil)
	h.click(20, 60)
	h.click(10, 10) // collapse A

	// (20, 60) was inside A's body and is now empty.
	h.click(20, 60)
	want := []gui.ID{h.id("B"), h.id("A")}
	if got := h.order(); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	// A press on B's body brings B forward.
	h.click(200, 200)
	want = []gui.ID{h.id("A"), h.id("B")}
	if got := h.order(); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestContentOnlyDrawnWhenExpanded(t *testing.T) {
	calls := 0
	h := newHarness(t, func(b *toolwindows.Builder) {
		b.AddWindow("A").DefaultSize(200, 100).Show("A", func(*gui.Context) { calls++ })
	})
	h.frame(nil)
	if calls != 1 {
		t.Fatalf("content drawn %d times, want 1", calls)
	}

	h.click(10, 10)
	calls = 0
	h.frame(nil)
	if calls != 0 {
		t.Errorf("collapsed content drawn %d times", calls)
	}
}

func TestDuplicateWindowFirstWins(t *testing.T) {
	var drawn []string
	h := newHarness(t, func(b *toolwindows.Builder) {
		b.AddWindow("A").Show("first", func(*gui.Context) { drawn = append(drawn, "first") })
		b.AddWindow("A").Show("second", func(*gui.Context) { drawn = append(drawn, "second") })
	})
	h.frame(nil)

	if got := h.order(); len(got) != 1 {
		t.Errorf("order = %v, want one window", got)
	}
	if !slices.Equal(drawn, []string{"first"}) {
		t.Errorf("drawn = %v", drawn)
	}
}

type counter struct {
	draws int
	scope gui.ID
}

func (c *counter) Draw(ctx *gui.Context) {
	c.draws++
	c.scope = ctx.CurrentID()
}

func TestShowDrawable(t *testing.T) {
	c := &counter{}
	id := gui.HashID("table").With("tab 1")
	h := newHarness(t, func(b *toolwindows.Builder) {
		b.AddWindowID(id).DefaultPos(10, 10).ShowDrawable("drawable", c)
	})
	h.frame(nil)

	if c.draws != 1 {
		t.Fatalf("Draw called %d times, want 1", c.draws)
	}
	order := h.order()
	if len(order) != 1 || order[0] == id {
		t.Fatalf("order = %v, want one window scoped by the region", order)
	}
	if c.scope == h.ctx.CurrentID() {
		t.Error("contents should run under the window's ID scope")
	}
}

func TestWindowOccludesRegionContent(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	tw := toolwindows.New()
	underneath := gui.HashID("underneath")

	hovered := false
	frame := func(x, y float32) {
		in.Reset()
		in.SetMousePos(x, y)
		ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
		hovered = ctx.Interact(gui.Rect{W: 800, H: 600}, underneath, gui.SenseHover).Hovered
		tw.Windows(ctx, twoWindows)
		_ = ui.End()
	}

	frame(20, 20)
	frame(20, 20)
	if hovered {
		t.Error("content under a window should not be hovered")
	}

	frame(700, 500)
	if !hovered {
		t.Error("content outside the windows should be hovered")
	}
}

func TestLowerWindowContentIsOccluded(t *testing.T) {
	var aHovered, bHovered bool
	h := newHarness(t, func(b *toolwindows.Builder) {
		b.AddWindow("A").DefaultPos(0, 0).DefaultSize(200, 100).Show("A", func(ctx *gui.Context) {
			aHovered = ctx.Interact(ctx.ClipRect(), ctx.GetID("body"), gui.SenseHover).Hovered
		})
		b.AddWindow("B").DefaultPos(50, 50).Show("B", func(ctx *gui.Context) {
			bHovered = ctx.Interact(ctx.ClipRect(), ctx.GetID("body"), gui.SenseHover).Hovered
		})
	})
	h.frame(nil)

	h.moveTo(100, 90)
	if aHovered || !bHovered {
		t.Errorf("over the overlap: A hovered %v, B hovered %v; want only B", aHovered, bHovered)
	}

	h.moveTo(20, 60)
	if !aHovered || bHovered {
		t.Errorf("over A only: A hovered %v, B hovered %v; want only A", aHovered, bHovered)
	}
}

func TestRegionsDoNotCollide(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	left := toolwindows.New(toolwindows.WithScope("left"))
	right := toolwindows.New(toolwindows.WithScope("right"))

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Region(gui.Rect{W: 400, H: 600})(func() {
		left.Windows(ctx, func(b *toolwindows.Builder) {
			b.AddWindow("A").Show("A", func(*gui.Context) {})
		})
	})
	ctx.Region(gui.Rect{X: 400, W: 400, H: 600})(func() {
		right.Windows(ctx, func(b *toolwindows.Builder) {
			b.AddWindow("A").Show("A", func(*gui.Context) {})
		})
	})
	_ = ui.End()

	if left.WindowID(ctx, "A") == right.WindowID(ctx, "A") {
		t.Error("windows with the same salt in different regions share an ID")
	}
	if len(left.Order(ctx)) != 1 || len(right.Order(ctx)) != 1 {
		t.Errorf("orders = %v and %v, want one window each", left.Order(ctx), right.Order(ctx))
	}
}

func TestSiblingRegionsWithDefaultScope(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	left := toolwindows.New()
	right := toolwindows.New()

	frame := func(input func(in *gui.InputState)) *gui.Context {
		in.Reset()
		if input != nil {
			input(in)
		}
		ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
		ctx.Region(gui.Rect{W: 400, H: 600})(func() {
			left.Windows(ctx, twoWindows)
		})
		ctx.Region(gui.Rect{X: 400, W: 400, H: 600})(func() {
			right.Windows(ctx, func(b *toolwindows.Builder) {
				b.AddWindow("C").Show("C", func(*gui.Context) {})
			})
		})
		if err := ui.End(); err != nil {
			t.Fatalf("End() returned error: %v", err)
		}
		return ctx
	}

	ctx := frame(nil)
	if left.RegionID(ctx) == right.RegionID(ctx) {
		t.Fatal("sibling regions share a region ID")
	}
	if got, want := left.Order(ctx), []gui.ID{left.WindowID(ctx, "A"), left.WindowID(ctx, "B")}; !slices.Equal(got, want) {
		t.Fatalf("left order = %v, want %v", got, want)
	}
	if got := right.Order(ctx); !slices.Equal(got, []gui.ID{right.WindowID(ctx, "C")}) {
		t.Fatalf("right order = %v, want only C", got)
	}

	// Click A's body, outside B.
	press := func(in *gui.InputState) {
		in.SetMousePos(20, 60)
		in.SetMouseButton(gui.MouseButtonLeft, true)
	}
	frame(press)
	frame(func(in *gui.InputState) {
		in.SetMousePos(20, 60)
		in.SetMouseButton(gui.MouseButtonLeft, false)
	})
	ctx = frame(nil)

	if got, want := left.Order(ctx), []gui.ID{left.WindowID(ctx, "B"), left.WindowID(ctx, "A")}; !slices.Equal(got, want) {
		t.Errorf("left order after clicking A = %v, want %v", got, want)
	}
	if got := right.Order(ctx); len(got) != 1 {
		t.Errorf("right order = %v, want one window", got)
	}
}

func TestOutOfRangeWindowIsHitWhereDrawn(t *testing.T) {
	h := newHarness(t, func(b *toolwindows.Builder) {
		b.AddWindow("A").DefaultPos(1000, 1000).DefaultSize(200, 100).Show("A", func(*gui.Context) {})
		b.AddWindow("B").DefaultPos(0, 0).DefaultSize(200, 100).Show("B", func(*gui.Context) {})
	})

	// A is drawn clamped to the bottom-right corner on its first frame.
	h.press(790, 590)

	if got := h.state("A").Position; got != (gui.Vec2{X: 784, Y: 584}) {
		t.Errorf("A position = %v, want (784, 584)", got)
	}
	if got, want := h.order(), []gui.ID{h.id("B"), h.id("A")}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want A brought to front", got)
	}
}

func TestWindowsInsideOffsetRegion(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	tw := toolwindows.New()
	region := gui.Rect{X: 100, Y: 100, W: 300, H: 300}

	frame := func() *gui.Context {
		ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
		ctx.Region(region)(func() { tw.Windows(ctx, twoWindows) })
		_ = ui.End()
		return ctx
	}
	frame()

	// A press at A's region-relative (20, 60) brings it forward.
	in.Reset()
	in.SetMousePos(120, 160)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	ctx := frame()
	order := tw.Order(ctx)
	if len(order) != 2 || order[1] != tw.WindowID(ctx, "A") {
		t.Errorf("order = %v, want A on top", order)
	}

	// A press outside the region is ignored.
	in.Reset()
	in.SetMouseButton(gui.MouseButtonLeft, false)
	frame()
	in.Reset()
	in.SetMousePos(50, 50)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	ctx = frame()
	if got := tw.Order(ctx); !slices.Equal(got, order) {
		t.Errorf("order changed to %v", got)
	}
}
