package demo

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/toolwindows/backend/opengl"
	"github.com/go-theft-auto/toolwindows/gui"
)

// RunGLFW opens a window as configured and draws scene every frame until
// the window is closed. GLFW needs the main thread: call it from main
// with the thread locked in an init function.
func RunGLFW(a *App, scene Scene) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	cfg := a.Config.Window
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	defer input.Destroy()

	ui := gui.New(renderer, gui.WithStyle(a.Config.GUIStyle(nil)))
	logger.Info("window opened", "title", cfg.Title, "width", fbw, "height", fbh)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		input.Update()
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		if w != fbw || h != fbh {
			fbw, fbh = w, h
			ui.Resize(w, h)
		}
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		now := glfw.GetTime()
		display := gui.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(input.Input(), display, float32(now-last))
		last = now

		a.Frame(ctx, scene, gui.Rect{W: display.X, H: display.Y})

		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		input.ApplyCursor(ui.CursorIcon())

		window.SwapBuffers()
	}
	return nil
}
