package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/varforge/internal/app"
	"github.com/vk/varforge/internal/cli"
	"github.com/vk/varforge/internal/hcl"
)

// main is the entrypoint for the varforge application.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := hcl.NewLoader()
	varforgeApp, err := app.NewApp(outW, appConfig, loader)
	if err != nil {
		return err
	}

	return varforgeApp.Run(context.Background())
}
