package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/drakos74/news-forest/infra/config"
	"github.com/drakos74/news-forest/internal/pipeline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.LoadClassifier()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	p := pipeline.New(cfg)
	log.Info().
		Str("run", p.ID()).
		Str("dataset", cfg.Dataset.Path).
		Str("backend", cfg.Forest.Backend).
		Int("trees", cfg.Forest.Trees).
		Msg("starting pipeline")

	_, err = p.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("run", p.ID()).Msg("pipeline failed")
	}
}
