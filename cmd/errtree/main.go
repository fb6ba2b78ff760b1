package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/errtree/internal/app"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Exit(app.ExitCode(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := application.Run(ctx, os.Stdout)
	stop()
	os.Exit(exitCode)
}
