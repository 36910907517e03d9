package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/wip-project/wipcli/internal/buildinfo"
	"github.com/wip-project/wipcli/internal/client/cli"
	"github.com/wip-project/wipcli/internal/client/config"
	"github.com/wip-project/wipcli/internal/logging"
)

func main() {
	buildinfo.Print(os.Stdout)

	log := logging.NewZerologLogger(
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
