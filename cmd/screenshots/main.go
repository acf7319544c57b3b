// Command screenshots renders the demo scenes offscreen, optionally after
// a scripted pointer sequence, and saves them as JPEG files.
//
//	go run ./cmd/screenshots [-out doc/imgs] [-config demo.yaml]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/toolwindows/backend/opengl"
	"github.com/go-theft-auto/toolwindows/gui"
	"github.com/go-theft-auto/toolwindows/internal/config"
	"github.com/go-theft-auto/toolwindows/internal/demo"
)

const (
	shotWidth  = 1024
	shotHeight = 768
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// pointer is one scripted input frame.
type pointer struct {
	x, y float32
	down bool
}

// screenshot is a scene captured after its script has played.
type screenshot struct {
	name   string
	scene  demo.Scene
	script []pointer
}

func drag(fromX, fromY, toX, toY float32) []pointer {
	return []pointer{{fromX, fromY, false}, {fromX, fromY, true}, {toX, toY, true}, {toX, toY, false}}
}

func click(x, y float32) []pointer {
	return []pointer{{x, y, false}, {x, y, true}, {x, y, false}}
}

func shots() []screenshot {
	// The simple scene's region starts below the top bar, inset by the
	// frame margin and padding.
	const originX, originY = 48, 72
	return []screenshot{
		{name: "simple", scene: demo.Simple},
		{name: "simple_front", scene: demo.Simple, script: click(originX+20, originY+60)},
		{name: "simple_drag", scene: demo.Simple, script: drag(originX+150, originY+10, originX+400, originY+200)},
		{name: "simple_collapsed", scene: demo.Simple, script: click(originX+10, originY+10)},
		{name: "inside_windows", scene: demo.InsideWindows},
		{name: "inside_dock", scene: demo.InsideDock},
	}
}

func run() error {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := demo.LoadConfig(*configPath, "Tool windows", false)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(shotWidth, shotHeight, "screenshots", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(shotWidth, shotHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	all := shots()
	for _, s := range all {
		if err := capture(renderer, cfg, s, *outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg\n", s.name)
	}
	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(all), *outDir)
	return nil
}

func capture(renderer *opengl.Renderer, cfg *config.Config, s screenshot, outDir string) error {
	// Fresh GUI and demo state per screenshot.
	ui := gui.New(renderer, gui.WithStyle(cfg.GUIStyle(nil)))
	app := demo.NewApp(cfg)
	in := gui.NewInputState()

	display := gui.Vec2{X: shotWidth, Y: shotHeight}
	frame := func(p *pointer) error {
		in.Reset()
		if p != nil {
			in.SetMousePos(p.x, p.y)
			in.SetMouseButton(gui.MouseButtonLeft, p.down)
		}
		gl.Viewport(0, 0, shotWidth, shotHeight)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(in, display, 1.0/60.0)
		app.Frame(ctx, s.scene, gui.Rect{W: display.X, H: display.Y})
		return ui.End()
	}

	// Two frames settle measured sizes before the script starts.
	for range 2 {
		if err := frame(nil); err != nil {
			return err
		}
	}
	for i := range s.script {
		if err := frame(&s.script[i]); err != nil {
			return err
		}
	}
	if err := frame(nil); err != nil {
		return err
	}

	pixels := make([]byte, shotWidth*shotHeight*4)
	gl.ReadPixels(0, 0, shotWidth, shotHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL rows start at the bottom.
	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	rowLen := shotWidth * 4
	for y := 0; y < shotHeight; y++ {
		src := (shotHeight - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return f.Close()
}
