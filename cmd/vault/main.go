package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/archivevault/internal/buildinfo"
	"github.com/dmitrijs2005/archivevault/internal/cli"
	"github.com/dmitrijs2005/archivevault/internal/config"
	"github.com/dmitrijs2005/archivevault/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, logger, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}
