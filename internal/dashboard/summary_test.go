package dashboard

import (
	"testing"

	"cancerdash/domain/cancer"
	"cancerdash/domain/chart"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]chart.Bar{
		{Country: "A", Value: 4},
		{Country: "B", Value: 1},
		{Country: "C", Missing: true},
		{Country: "D", Value: 10},
	})

	assert.Equal(t, chart.Summary{Count: 3, Missing: 1, Mean: 5, Median: 4, Min: 1, Max: 10}, s)
}

func TestSummarize_NoValues(t *testing.T) {
	assert.Equal(t, chart.Summary{}, Summarize(nil))
	assert.Equal(t, chart.Summary{Missing: 2}, Summarize([]chart.Bar{{Missing: true}, {Missing: true}}))
}

func TestAssignColors_CyclesPalette(t *testing.T) {
	var rows []cancer.Row
	for i := 0; i < 12; i++ {
		rows = append(rows, cancer.Row{Country: string(rune('A' + i))})
	}
	rows = append(rows, cancer.Row{Country: "A"})

	colors := AssignColors(rows)
	assert.Len(t, colors, 12)
	assert.Equal(t, "#636efa", colors["A"])
	assert.Equal(t, colors["A"], colors["K"])
	assert.Equal(t, colors["B"], colors["L"])
	assert.NotEqual(t, colors["A"], colors["B"])
}
