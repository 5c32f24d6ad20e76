package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/aaronsmc/office-wishlist-agent/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, cli.Error("error: "+err.Error()))
		os.Exit(1)
	}
}
