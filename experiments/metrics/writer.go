package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Writer renders matchups and summaries as CSV.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) WriteMatchupRecords(records []MatchupRecord) (err error) {
	writer := csv.NewWriter(w.out)
	defer func() {
		writer.Flush()
		if err == nil {
			err = writer.Error()
		}
	}()

	// Write header
	header := []string{"attack", "defend", "attacker_losses", "defender_losses"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write matchup records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			fmt.Sprint(record.Attack.Dice()),
			fmt.Sprint(record.Defend.Dice()),
			strconv.Itoa(record.Losses.Attacker),
			strconv.Itoa(record.Losses.Defender),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write matchup record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummaries(summaries *Summaries) (err error) {
	writer := csv.NewWriter(w.out)
	defer func() {
		writer.Flush()
		if err == nil {
			err = writer.Error()
		}
	}()

	// Write header
	header := []string{"attack", "defend", "occurrences", "attacker_losses", "defender_losses", "average_attacker", "average_defender", "rolls", "expected_attacker", "expected_defender"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summaries header: %w", err)
	}

	// Write each row
	for _, pair := range StrategyPairs() {
		summary, err := summaries.Get(pair)
		if err != nil {
			return err
		}
		attacker, defender := summary.Average()
		expectedAttacker, expectedDefender := summary.WeightedAverage()
		row := []string{
			strconv.Itoa(pair.Attack.Dice()),
			strconv.Itoa(pair.Defend.Dice()),
			strconv.Itoa(summary.Occurrences),
			strconv.Itoa(summary.Losses.Attacker),
			strconv.Itoa(summary.Losses.Defender),
			strconv.FormatFloat(attacker, 'f', 2, 64),
			strconv.FormatFloat(defender, 'f', 2, 64),
			strconv.Itoa(summary.Rolls),
			strconv.FormatFloat(expectedAttacker, 'f', 4, 64),
			strconv.FormatFloat(expectedDefender, 'f', 4, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}
