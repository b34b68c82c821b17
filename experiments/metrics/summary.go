package metrics

import (
	"errors"
	"fmt"
	"riskodds/game"
	"riskodds/utils"
)

// ErrMissingStrategy is returned when a strategy pair was never recorded.
var ErrMissingStrategy = errors.New("strategy pair not recorded")

// StrategyPair buckets matchups by the number of dice each side commits.
type StrategyPair struct {
	Attack game.Strategy
	Defend game.Strategy
}

func PairOf(attack game.Attack, defend game.Defend) StrategyPair {
	return StrategyPair{Attack: attack.Strategy(), Defend: defend.Strategy()}
}

func (p StrategyPair) String() string {
	return fmt.Sprintf("A: %s, D: %s", p.Attack, p.Defend)
}

// StrategyPairs is the full strategy domain in report order.
func StrategyPairs() []StrategyPair {
	pairs := make([]StrategyPair, 0, len(game.AttackStrategies)*len(game.DefendStrategies))
	for _, a := range game.AttackStrategies {
		for _, d := range game.DefendStrategies {
			pairs = append(pairs, StrategyPair{Attack: a, Defend: d})
		}
	}
	return pairs
}

// Summary accumulates the losses of every matchup sharing a strategy pair.
type Summary struct {
	Losses      game.Losses
	Occurrences int
	// Weighted by the number of ordered rolls behind each matchup.
	WeightedLosses game.Losses
	Rolls          int
	Outcomes       map[game.Losses]int
}

// Average is the mean casualties per matchup.
func (s Summary) Average() (attacker, defender float64) {
	return utils.Average(s.Losses.Attacker, s.Occurrences), utils.Average(s.Losses.Defender, s.Occurrences)
}

// WeightedAverage is the expected casualties per roll of the dice.
func (s Summary) WeightedAverage() (attacker, defender float64) {
	return utils.Average(s.WeightedLosses.Attacker, s.Rolls), utils.Average(s.WeightedLosses.Defender, s.Rolls)
}

// Summaries maps strategy pairs to their running summary. It only grows.
type Summaries struct {
	byPair map[StrategyPair]*Summary
}

func NewSummaries() *Summaries {
	return &Summaries{byPair: make(map[StrategyPair]*Summary)}
}

// Record adds a single matchup outcome.
func (s *Summaries) Record(key StrategyPair, losses game.Losses) {
	s.RecordWeighted(key, losses, 1)
}

// RecordWeighted adds a matchup outcome that stands for rolls ordered rolls.
func (s *Summaries) RecordWeighted(key StrategyPair, losses game.Losses, rolls int) {
	summary, ok := s.byPair[key]
	if !ok {
		summary = &Summary{Outcomes: make(map[game.Losses]int)}
		s.byPair[key] = summary
	}
	summary.Losses = summary.Losses.Add(losses)
	summary.Occurrences++
	summary.WeightedLosses = summary.WeightedLosses.Add(losses.Scale(rolls))
	summary.Rolls += rolls
	summary.Outcomes[losses]++
}

// Get returns a copy of the summary for key.
func (s *Summaries) Get(key StrategyPair) (Summary, error) {
	summary, ok := s.byPair[key]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %s", ErrMissingStrategy, key)
	}
	outcomes := make(map[game.Losses]int, len(summary.Outcomes))
	for k, v := range summary.Outcomes {
		outcomes[k] = v
	}
	cp := *summary
	cp.Outcomes = outcomes
	return cp, nil
}

func (s *Summaries) MustGet(key StrategyPair) Summary {
	summary, err := s.Get(key)
	if err != nil {
		panic(err)
	}
	return summary
}

func (s *Summaries) Len() int {
	return len(s.byPair)
}
