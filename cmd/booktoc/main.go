package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/jackzampolin/booktoc/version"
)

func main() {
	// fang handles signals, styled help and errors for the cobra tree
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.GitRelease),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}
