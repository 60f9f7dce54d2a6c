package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-weather/internal/application/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.NewFromOS().Run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
