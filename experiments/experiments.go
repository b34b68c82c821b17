package experiments

import (
	"riskodds/experiments/metrics"
	"riskodds/game"

	"github.com/rs/zerolog/log"
)

// RunSweep resolves every attack against every defence under rules and
// aggregates the losses by strategy pair. Each matchup is also handed to
// collector.
func RunSweep(rules game.Rules, collector metrics.Collector) *metrics.Summaries {
	attacks := game.AllAttacks()
	defends := game.AllDefends()
	summaries := metrics.NewSummaries()

	log.Info().Msgf("starting sweep of %d attacks against %d defends...", len(attacks), len(defends))

	count := 0
	for _, attack := range attacks {
		for _, defend := range defends {
			losses := game.ResolveWith(rules, attack, defend)
			log.Debug().
				Stringer("attack", attack).
				Stringer("defend", defend).
				Stringer("losses", losses).
				Msg("resolved matchup")

			collector.Add(metrics.MatchupRecord{Attack: attack, Defend: defend, Losses: losses})
			summaries.RecordWeighted(metrics.PairOf(attack, defend), losses, attack.Permutations()*defend.Permutations())
			count++
		}
	}

	log.Info().Msgf("completed sweep of %d matchups over %d strategy pairs", count, summaries.Len())
	return summaries
}
