// Package cmd wires build information and process signals into the rocker CLI.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/rocker/internal/adapters/in/cli"
)

// ExecuteCLI runs the CLI and exits the process with status 1 on failure.
func ExecuteCLI(build, commit, date string) {
	cli.SetVersionInfo(build, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()

	os.Exit(exitCode(err, os.Stderr))
}

// exitCode prints err on w and returns the process exit status.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(w, cli.RenderError(err))
	return 1
}
