// Command inside-windows shows tool windows inside a movable, resizable
// document window, next to two documents without them.
//
//	go run ./cmd/inside-windows [-config demo.yaml] [-verbose]
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

	cfg, err := demo.LoadConfig(*configPath, "Document System with Contained Tool Windows", *verbose)
	if err != nil {
		return err
	}
	return demo.RunGLFW(demo.NewApp(cfg), demo.InsideWindows)
}
