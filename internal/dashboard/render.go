package dashboard

import (
	"fmt"
	"sort"

	"cancerdash/domain/cancer"
	"cancerdash/domain/chart"
	"cancerdash/internal/errors"
)

// ChartTitle is the title of the chart for a cancer column.
func ChartTitle(selectedCancer string) string {
	return fmt.Sprintf("%s Rates in Asian Countries", selectedCancer)
}

// FilterAndRender builds the bar chart for the current selector values.
//
// The working set is the whole table for cancer.AllRegions, otherwise the
// rows whose Region equals selectedRegion; an empty working set gives a
// chart with no bars. Each row becomes one bar colored by country. Bars are
// ordered by descending value with ties kept in file order, and bars with
// no value go last. An unknown column or a non-numeric cell is returned as
// an error.
//
// The table is expected to hold one row per country. A country listed in
// several rows gets one bar per row, each placed by its own value, while
// XAxis.Categories and Legend name it once at its first bar.
func (s *State) FilterAndRender(selectedRegion, selectedCancer string) (*chart.Spec, error) {
	if !s.Table.HasColumn(selectedCancer) {
		return nil, errors.UnknownColumn(selectedCancer)
	}

	rows := s.Table.Filter(selectedRegion)
	bars := make([]chart.Bar, 0, len(rows))
	for _, row := range rows {
		v, ok, err := s.Table.Value(row, selectedCancer)
		if err != nil {
			return nil, err
		}
		bars = append(bars, chart.Bar{
			Country: row.Country,
			Region:  row.Region,
			Value:   v,
			Missing: !ok,
			Color:   s.colorFor(row.Country),
		})
	}

	sortDescending(bars)

	spec := &chart.Spec{
		Title: ChartTitle(selectedCancer),
		XAxis: chart.Axis{
			Title:         cancer.ColumnCountry,
			CategoryOrder: chart.CategoryOrderTotalDescending,
			Categories:    categories(bars),
		},
		YAxis:   chart.Axis{Title: selectedCancer},
		Bars:    bars,
		Legend:  legend(bars),
		Summary: Summarize(bars),
	}

	s.logger.Debug("rendered region=%q cancer=%q bars=%d", selectedRegion, selectedCancer, len(bars))
	return spec, nil
}

func (s *State) colorFor(country string) string {
	if c, ok := s.Colors[country]; ok {
		return c
	}
	return qualitativePalette[0]
}

func sortDescending(bars []chart.Bar) {
	sort.SliceStable(bars, func(i, j int) bool {
		a, b := bars[i], bars[j]
		if a.Missing != b.Missing {
			return !a.Missing
		}
		return a.Value > b.Value
	})
}

// categories lists each country once, in bar order.
func categories(bars []chart.Bar) []string {
	seen := make(map[string]bool, len(bars))
	out := make([]string, 0, len(bars))
	for _, b := range bars {
		if seen[b.Country] {
			continue
		}
		seen[b.Country] = true
		out = append(out, b.Country)
	}
	return out
}

func legend(bars []chart.Bar) []chart.LegendEntry {
	seen := make(map[string]bool, len(bars))
	out := make([]chart.LegendEntry, 0, len(bars))
	for _, b := range bars {
		if seen[b.Country] {
			continue
		}
		seen[b.Country] = true
		out = append(out, chart.LegendEntry{Label: b.Country, Color: b.Color})
	}
	return out
}
