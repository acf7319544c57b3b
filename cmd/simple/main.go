// Command simple shows tool windows inside a framed scroll area.
// The windows come from the tool_windows section of the config.
//
//	go run ./cmd/simple [-config demo.yaml] [-verbose]
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

	cfg, err := demo.LoadConfig(*configPath, "Tool windows", *verbose)
	if err != nil {
		return err
	}
	return demo.RunGLFW(demo.NewApp(cfg), demo.Simple)
}
