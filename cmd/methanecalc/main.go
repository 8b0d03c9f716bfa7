package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mamadbah2/herdmethane/internal/cli"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(version).ExecuteContext(ctx)
}
