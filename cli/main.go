package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/trebuchet-org/sling/internal/cli"
	"github.com/trebuchet-org/sling/internal/cli/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		render.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
