package metrics

import (
	"fmt"
	"io"
	"riskodds/game"
	"slices"

	"gopkg.in/yaml.v3"
)

// WriteText prints one line per matchup followed by the strategy table.
func WriteText(out io.Writer, records []MatchupRecord, summaries *Summaries) error {
	for _, record := range records {
		if _, err := fmt.Fprintln(out, record); err != nil {
			return fmt.Errorf("failed to write matchup line: %w", err)
		}
	}

	for _, pair := range StrategyPairs() {
		summary, err := summaries.Get(pair)
		if err != nil {
			return err
		}
		attacker, defender := summary.Average()
		expectedAttacker, expectedDefender := summary.WeightedAverage()
		_, err = fmt.Fprintf(out, "%s, occurrences: %d, average losses: A: %0.2f, D: %0.2f, expected per roll: A: %0.2f, D: %0.2f, losses: %s\n",
			pair, summary.Occurrences, attacker, defender, expectedAttacker, expectedDefender, summary.Losses)
		if err != nil {
			return fmt.Errorf("failed to write summary line: %w", err)
		}
	}
	return nil
}

type yamlAverage struct {
	Attacker float64 `yaml:"attacker"`
	Defender float64 `yaml:"defender"`
}

type yamlOutcome struct {
	game.Losses `yaml:",inline"`
	Count       int `yaml:"count"`
}

type yamlSummary struct {
	Attack      game.Strategy `yaml:"attack"`
	Defend      game.Strategy `yaml:"defend"`
	Occurrences int           `yaml:"occurrences"`
	Losses      game.Losses   `yaml:"losses"`
	Average     yamlAverage   `yaml:"average"`
	Rolls       int           `yaml:"rolls"`
	Expected    yamlAverage   `yaml:"expected"`
	Outcomes    []yamlOutcome `yaml:"outcomes"`
}

// WriteYAML prints the strategy table as a YAML sequence.
func WriteYAML(out io.Writer, summaries *Summaries) error {
	var doc []yamlSummary
	for _, pair := range StrategyPairs() {
		summary, err := summaries.Get(pair)
		if err != nil {
			return err
		}
		doc = append(doc, toYAML(pair, summary))
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode summaries: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush summaries: %w", err)
	}
	return nil
}

func toYAML(pair StrategyPair, summary Summary) yamlSummary {
	y := yamlSummary{
		Attack:      pair.Attack,
		Defend:      pair.Defend,
		Occurrences: summary.Occurrences,
		Losses:      summary.Losses,
		Rolls:       summary.Rolls,
	}
	y.Average.Attacker, y.Average.Defender = summary.Average()
	y.Expected.Attacker, y.Expected.Defender = summary.WeightedAverage()

	for losses, count := range summary.Outcomes {
		y.Outcomes = append(y.Outcomes, yamlOutcome{Losses: losses, Count: count})
	}
	// Most attacker losses first
	slices.SortFunc(y.Outcomes, func(a, b yamlOutcome) int {
		if a.Attacker != b.Attacker {
			return b.Attacker - a.Attacker
		}
		return a.Defender - b.Defender
	})
	return y
}
