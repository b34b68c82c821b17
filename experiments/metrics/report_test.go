package metrics

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"riskodds/game"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// filled records one matchup for every strategy pair.
func filled() *Summaries {
	summaries := NewSummaries()
	for _, pair := range StrategyPairs() {
		summaries.Record(pair, game.Losses{Attacker: 1})
	}
	return summaries
}

func TestWriteText(t *testing.T) {
	t.Run("matchup lines precede the strategy table", func(t *testing.T) {
		records := []MatchupRecord{{
			Attack: game.NewAttackWithTwo(5, 6),
			Defend: game.NewDefendWithTwo(6, 1),
			Losses: game.Losses{Attacker: 1, Defender: 1},
		}}
		var out bytes.Buffer

		err := WriteText(&out, records, filled())

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 7)
		require.Equal(t, "WithTwo[6 5],WithTwo[6 1] -> A: 1, D: 1", lines[0])
		require.True(t, strings.HasPrefix(lines[1], "A: WithThree, D: WithTwo, occurrences: 1, average losses: A: 1.00, D: 0.00"), lines[1])
	})

	t.Run("failing loudly on a missing strategy pair", func(t *testing.T) {
		var out bytes.Buffer
		err := WriteText(&out, nil, NewSummaries())
		require.ErrorIs(t, err, ErrMissingStrategy)
	})
}

func TestWriteYAML(t *testing.T) {
	summaries := filled()
	summaries.Record(StrategyPair{Attack: game.WithOne, Defend: game.WithOne}, game.Losses{Defender: 1})
	var out bytes.Buffer

	require.NoError(t, WriteYAML(&out, summaries))

	var doc []map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc, 6)
	require.Equal(t, "WithThree", doc[0]["attack"])
	require.Equal(t, "WithTwo", doc[0]["defend"])

	last := doc[5]
	require.Equal(t, 2, last["occurrences"])
	require.Equal(t, []any{
		map[string]any{"attacker": 1, "defender": 0, "count": 1},
		map[string]any{"attacker": 0, "defender": 1, "count": 1},
	}, last["outcomes"])
}

func TestWriter(t *testing.T) {
	t.Run("writing matchup records", func(t *testing.T) {
		var out bytes.Buffer
		records := []MatchupRecord{{
			Attack: game.NewAttackWithOne(4),
			Defend: game.NewDefendWithOne(4),
			Losses: game.Losses{Attacker: 1},
		}}

		require.NoError(t, NewWriter(&out).WriteMatchupRecords(records))

		rows, err := csv.NewReader(&out).ReadAll()
		require.NoError(t, err)
		require.Equal(t, [][]string{
			{"attack", "defend", "attacker_losses", "defender_losses"},
			{"[4]", "[4]", "1", "0"},
		}, rows)
	})

	t.Run("writing summaries in strategy order", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, NewWriter(&out).WriteSummaries(filled()))

		rows, err := csv.NewReader(&out).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 7)
		require.Equal(t, []string{"3", "2", "1", "1", "0", "1.00", "0.00", "1", "1.0000", "0.0000"}, rows[1])
	})

	t.Run("failing loudly on a missing strategy pair", func(t *testing.T) {
		var out bytes.Buffer
		err := NewWriter(&out).WriteSummaries(NewSummaries())
		require.ErrorIs(t, err, ErrMissingStrategy)
	})
}

func TestCollector(t *testing.T) {
	record := MatchupRecord{Attack: game.NewAttackWithOne(1), Defend: game.NewDefendWithOne(1)}

	c := NewCollector()
	c.Add(record)
	require.Equal(t, []MatchupRecord{record}, c.Records())

	d := NewDummyCollector()
	d.Add(record)
	require.Empty(t, d.Records())
}
