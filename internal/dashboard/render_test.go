package dashboard

import (
	"testing"

	"cancerdash/domain/chart"
	"cancerdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countries(bars []chart.Bar) []string {
	out := make([]string, len(bars))
	for i, b := range bars {
		out[i] = b.Country
	}
	return out
}

func TestFilterAndRender_Scenario(t *testing.T) {
	state := scenarioState(t)

	spec, err := state.FilterAndRender("All", breast)
	require.NoError(t, err)
	require.Len(t, spec.Bars, 2)
	assert.Equal(t, "India", spec.Bars[0].Country)
	assert.Equal(t, 12.3, spec.Bars[0].Value)
	assert.Equal(t, "China", spec.Bars[1].Country)
	assert.Equal(t, 9.8, spec.Bars[1].Value)
	assert.Equal(t, breast+" Rates in Asian Countries", spec.Title)

	spec, err = state.FilterAndRender("South Asia", breast)
	require.NoError(t, err)
	require.Len(t, spec.Bars, 1)
	assert.Equal(t, "India", spec.Bars[0].Country)
}

func TestFilterAndRender_BarCountMatchesRegion(t *testing.T) {
	state := asiaState(t)

	tests := []struct {
		region string
		want   int
	}{
		{"All", 6},
		{"East Asia", 3},
		{"South Asia", 2},
		{"South-East Asia", 1},
		{"Central Asia", 0},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			spec, err := state.FilterAndRender(tt.region, breast)
			require.NoError(t, err)
			assert.Len(t, spec.Bars, tt.want)
			for _, b := range spec.Bars {
				if tt.region != "All" {
					assert.Equal(t, tt.region, b.Region)
				}
			}
		})
	}
}

func TestFilterAndRender_EmptyWorkingSetIsNotAnError(t *testing.T) {
	state := asiaState(t)

	spec, err := state.FilterAndRender("Oceania", breast)
	require.NoError(t, err)
	assert.True(t, spec.Empty())
	assert.Empty(t, spec.XAxis.Categories)
	assert.Empty(t, spec.Legend)
	assert.Equal(t, 0, spec.Summary.Count)
}

func TestFilterAndRender_DescendingWithStableTies(t *testing.T) {
	state := asiaState(t)

	spec, err := state.FilterAndRender("All", breast)
	require.NoError(t, err)

	// Japan and Korea tie at 9; Japan comes first in the file.
	assert.Equal(t, []string{"India", "China", "Japan", "Korea", "Laos", "Nepal"}, countries(spec.Bars))
	assert.Equal(t, countries(spec.Bars), spec.XAxis.Categories)
	assert.Equal(t, chart.CategoryOrderTotalDescending, spec.XAxis.CategoryOrder)
	assert.Equal(t, "Country", spec.XAxis.Title)
	assert.Equal(t, breast, spec.YAxis.Title)

	for i := 1; i < len(spec.Bars); i++ {
		assert.GreaterOrEqual(t, spec.Bars[i-1].Value, spec.Bars[i].Value)
	}
}

func TestFilterAndRender_MissingValuesGoLast(t *testing.T) {
	state, _ := newTestState(t,
		[]string{"Country", "Region", "Lung_cancer"},
		[][]string{
			{"India", "South Asia", ""},
			{"Japan", "East Asia", "20"},
			{"China", "East Asia", "30"},
		},
		configWith("Lung_cancer"),
	)

	spec, err := state.FilterAndRender("All", "Lung_cancer")
	require.NoError(t, err)
	assert.Equal(t, []string{"China", "Japan", "India"}, countries(spec.Bars))
	assert.True(t, spec.Bars[2].Missing)
	assert.Len(t, spec.Valued(), 2)
	assert.Equal(t, 1, spec.Summary.Missing)
	assert.Equal(t, 25.0, spec.Summary.Mean)
}

func TestFilterAndRender_ColorsStablePerCountry(t *testing.T) {
	state := asiaState(t)

	all, err := state.FilterAndRender("All", breast)
	require.NoError(t, err)
	east, err := state.FilterAndRender("East Asia", breast)
	require.NoError(t, err)

	colorOf := func(spec *chart.Spec, country string) string {
		for _, b := range spec.Bars {
			if b.Country == country {
				return b.Color
			}
		}
		return ""
	}

	seen := map[string]bool{}
	for _, b := range all.Bars {
		assert.False(t, seen[b.Color], "colors are distinct while the palette lasts")
		seen[b.Color] = true
	}
	for _, c := range []string{"Japan", "Korea", "China"} {
		assert.Equal(t, colorOf(all, c), colorOf(east, c))
	}
	require.Len(t, all.Legend, 6)
	assert.Equal(t, "India", all.Legend[0].Label)
}

func TestFilterAndRender_Errors(t *testing.T) {
	state := asiaState(t)

	tests := []struct {
		name   string
		region string
		cancer string
		code   string
	}{
		{"unknown column", "All", "Liver_cancer", errors.CodeUnknownColumn},
		{"unknown column with empty set", "Oceania", "Liver_cancer", errors.CodeUnknownColumn},
		{"empty selection", "All", "", errors.CodeUnknownColumn},
		{"non numeric cell", "All", "Lung_Cancer_deaths", errors.CodeNonNumericValue},
		{"text column", "East Asia", "Notes", errors.CodeNonNumericValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := state.FilterAndRender(tt.region, tt.cancer)
			require.Error(t, err)
			assert.Nil(t, spec)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestFilterAndRender_NonCancerNumericColumnRenders(t *testing.T) {
	state := asiaState(t)

	spec, err := state.FilterAndRender("East Asia", "Health_spending")
	require.NoError(t, err)
	assert.Equal(t, []string{"Japan", "Korea", "China"}, countries(spec.Bars))
}

func TestFilterAndRender_RepeatedCountryKeepsOneBarPerRow(t *testing.T) {
	state, _ := newTestState(t,
		[]string{"Country", "Region", "Lung_cancer"},
		[][]string{
			{"India", "South Asia", "5"},
			{"Nepal", "South Asia", "8"},
			{"India", "South Asia", "10"},
		},
		configWith("Lung_cancer"),
	)

	spec, err := state.FilterAndRender("All", "Lung_cancer")
	require.NoError(t, err)
	assert.Equal(t, []string{"India", "Nepal", "India"}, countries(spec.Bars))
	assert.Equal(t, []string{"India", "Nepal"}, spec.XAxis.Categories)
	require.Len(t, spec.Legend, 2)
	assert.Equal(t, spec.Bars[0].Color, spec.Bars[2].Color)
}
