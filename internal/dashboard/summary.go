package dashboard

import (
	"cancerdash/domain/chart"

	"github.com/montanaflynn/stats"
)

// Summarize describes the valued bars. With no valued bars only the counts
// are set.
func Summarize(bars []chart.Bar) chart.Summary {
	var summary chart.Summary
	data := make(stats.Float64Data, 0, len(bars))
	for _, b := range bars {
		if b.Missing {
			summary.Missing++
			continue
		}
		data = append(data, b.Value)
	}
	summary.Count = len(data)
	if len(data) == 0 {
		return summary
	}

	// stats only fails on empty input, checked above.
	summary.Mean, _ = stats.Mean(data)
	summary.Median, _ = stats.Median(data)
	summary.Min, _ = stats.Min(data)
	summary.Max, _ = stats.Max(data)
	return summary
}
