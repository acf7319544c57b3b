// Command term runs the demos in a terminal. Each cell stands for an
// 8x8 block of GUI pixels; the status line shows the pointer shape the
// GUI asks for and the example state.
//
//	go run ./cmd/term [-scene simple|inside-windows|inside-dock] [-config demo.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	tcellbackend "github.com/go-theft-auto/toolwindows/backend/tcell"
	"github.com/go-theft-auto/toolwindows/gui"
	"github.com/go-theft-auto/toolwindows/internal/demo"
)

const frameInterval = time.Second / 30

var scenes = map[string]demo.Scene{
	"simple":         demo.Simple,
	"inside-windows": demo.InsideWindows,
	"inside-dock":    demo.InsideDock,
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	verbose := flag.Bool("verbose", false, "log debug messages to stderr (redirect it)")
	sceneName := flag.String("scene", "simple", "simple, inside-windows or inside-dock")
	flag.Parse()

	scene, ok := scenes[*sceneName]
	if !ok {
		return fmt.Errorf("unknown scene %q", *sceneName)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	cfg, err := demo.LoadConfig(*configPath, "Tool windows (terminal)", *verbose)
	if err != nil {
		return err
	}
	if (*verbose || cfg.Verbose) && term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintln(os.Stderr, "verbose logging disabled: stderr is the terminal, redirect it with 2>file")
		demo.SetLogging(false)
	}

	// Ask about the background before tcell takes over the terminal.
	dark := cfg.Style == "dark" || (cfg.Style != "light" && termenv.HasDarkBackground())
	style := cfg.GUIStyle(func() bool { return dark })
	background := gui.RGBA(30, 30, 34, 255)
	if !dark {
		background = gui.RGBA(235, 235, 235, 255)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	renderer := tcellbackend.NewRenderer(screen, background)
	ui := gui.New(renderer, gui.WithStyle(style))
	app := demo.NewApp(cfg)
	return loop(ctx, screen, renderer, ui, app, scene)
}

func loop(ctx context.Context, screen tcell.Screen, renderer *tcellbackend.Renderer, ui *gui.GUI, app *demo.App, scene demo.Scene) error {
	events := tcellbackend.PollEvents(ctx, screen)
	input := tcellbackend.NewInputAdapter()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	apply := func(ev tcell.Event) {
		if cols, rows := input.Handle(ev); cols > 0 && rows > 0 {
			ui.Resize(cols*tcellbackend.CellWidth, rows*tcellbackend.CellHeight)
			screen.Sync()
		}
	}

	last := time.Now()
	for {
		in := input.Begin()

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			apply(ev)
		case <-ticker.C:
		}
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				apply(ev)
			default:
				break drain
			}
		}
		if input.Quit() {
			return nil
		}

		now := time.Now()
		display := renderer.DisplaySize()
		frame := ui.Begin(in, display, float32(now.Sub(last).Seconds()))
		last = now
		app.Frame(frame, scene, gui.Rect{W: display.X, H: display.Y})

		number, toggle, event := app.State.Snapshot()
		renderer.SetStatus(fmt.Sprintf(" %s | number %.1f toggle %t | %s | q quits", ui.CursorIcon(), number, toggle, event))
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
	}
}
