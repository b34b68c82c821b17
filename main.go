package main

import (
	"flag"
	"os"
	"riskodds/experiments"
	"riskodds/experiments/metrics"
	"riskodds/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	format   experiments.Format
	matchups bool
	level    zerolog.Level
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}
	zerolog.SetGlobalLevel(cfg.level)

	collector := metrics.NewDummyCollector()
	if cfg.matchups {
		collector = metrics.NewCollector()
	}

	summaries := experiments.RunSweep(game.NewStandardRules(), collector)

	if err := experiments.Report(os.Stdout, cfg.format, collector.Records(), summaries); err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
}

func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("riskodds", flag.ContinueOnError)
	format := fs.String("format", string(experiments.FormatText), "Report format: text, csv or yaml")
	matchups := fs.Bool("matchups", true, "Print every resolved matchup before the strategy table")
	level := fs.String("log-level", zerolog.LevelInfoValue, "Log level")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	f, err := experiments.ParseFormat(*format)
	if err != nil {
		return config{}, err
	}
	l, err := zerolog.ParseLevel(*level)
	if err != nil {
		return config{}, err
	}
	return config{format: f, matchups: *matchups, level: l}, nil
}
