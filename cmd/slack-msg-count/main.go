package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/paulera/team-stats/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.NewMsgCountCommand(cli.SlackRepositories), os.Args[1:])
	stop()
	os.Exit(code)
}
