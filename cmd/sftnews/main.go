// Package main is the entry point for the sftnews CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmylchreest/sftnews/cmd/sftnews/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := commands.Execute(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
