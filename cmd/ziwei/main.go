// Package main is the entry point for the ziwei CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/f3rmion/ziwei/cmd/ziwei/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
