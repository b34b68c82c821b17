package experiments

import (
	"fmt"
	"io"
	"riskodds/experiments/metrics"
)

type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatCSV, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Report writes the sweep results to out in the given format. The YAML form
// only carries the strategy table.
func Report(out io.Writer, format Format, records []metrics.MatchupRecord, summaries *metrics.Summaries) error {
	switch format {
	case FormatText:
		return metrics.WriteText(out, records, summaries)
	case FormatCSV:
		writer := metrics.NewWriter(out)
		if len(records) > 0 {
			if err := writer.WriteMatchupRecords(records); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to separate tables: %w", err)
			}
		}
		return writer.WriteSummaries(summaries)
	case FormatYAML:
		return metrics.WriteYAML(out, summaries)
	}
	return fmt.Errorf("unknown report format %q", format)
}
