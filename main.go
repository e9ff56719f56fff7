package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"isolation/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment file, the built-in evaluator comparison if empty")
	logLevel := flag.String("log-level", "info", "debug, info, warn or disabled")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := experiments.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
