package main

import (
	"context"
	"os"
	"os/signal"

	"kctx-cli/cmd"
	"kctx-cli/internal/render"
)

func main() {
	// Set up a signal-interruptible context
	ctx, cancel := context.WithCancel(context.Background())

	interruptCh := make(chan os.Signal, 1)
	signal.Notify(interruptCh, os.Interrupt)

	go func() {
		<-interruptCh
		cancel()
	}()

	if err := cmd.Execute(ctx); err != nil {
		render.PrintError(err)
		os.Exit(1)
	}
}
