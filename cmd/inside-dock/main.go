// Command inside-dock shows tool windows inside the tabs of a split dock
// area. Each tab keeps its own windows and z-order.
//
//	go run ./cmd/inside-dock [-config demo.yaml] [-verbose]
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/toolwindows/internal/demo"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	verbose := flag.Bool("verbose", false, "log debug messages to stderr")
	flag.Parse()

	cfg, err := demo.LoadConfig(*configPath, "Document System using a dock with tool windows", *verbose)
	if err != nil {
		return err
	}
	return demo.RunGLFW(demo.NewApp(cfg), demo.InsideDock)
}
