package metrics

import "riskodds/game"

// MatchupRecord is one resolved matchup.
type MatchupRecord struct {
	Attack game.Attack
	Defend game.Defend
	Losses game.Losses
}

func (r MatchupRecord) String() string {
	return r.Attack.String() + "," + r.Defend.String() + " -> " + r.Losses.String()
}

type Collector interface {
	Add(record MatchupRecord)
	Records() []MatchupRecord
}

type collector struct {
	records []MatchupRecord
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Add(record MatchupRecord) {
	c.records = append(c.records, record)
}

func (c *collector) Records() []MatchupRecord {
	return c.records
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Add(record MatchupRecord) {}
func (c *dummyCollector) Records() []MatchupRecord { return nil }
