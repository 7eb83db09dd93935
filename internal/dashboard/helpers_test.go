package dashboard

import (
	"bytes"
	"testing"

	"cancerdash/domain/cancer"
	"cancerdash/internal"
	"cancerdash/internal/config"

	"github.com/stretchr/testify/require"
)

const breast = "Breast_cancer_deaths_per_100_000_women"

func newTestState(t *testing.T, headers []string, rows [][]string, cfg config.DashboardConfig) (*State, *bytes.Buffer) {
	t.Helper()
	table, err := cancer.NewTable(headers, rows)
	require.NoError(t, err)

	var logs bytes.Buffer
	state, err := NewState(table, cfg, internal.NewLoggerTo(&logs, internal.LogLevelDebug))
	require.NoError(t, err)
	return state, &logs
}

// scenarioState is the two-country table used throughout the docs.
func scenarioState(t *testing.T) *State {
	t.Helper()
	state, _ := newTestState(t,
		[]string{"Country", "Region", breast},
		[][]string{
			{"India", "South Asia", "12.3"},
			{"China", "East Asia", "9.8"},
		},
		config.DashboardConfig{DefaultCancer: breast},
	)
	return state
}

// asiaState is a larger table with ties, blanks and several regions.
func asiaState(t *testing.T) *State {
	t.Helper()
	state, _ := newTestState(t,
		[]string{"Country", "Region", breast, "Lung_Cancer_deaths", "Health_spending", "Notes"},
		[][]string{
			{"Nepal", "South Asia", "5", "3", "4.4", "ok"},
			{"Japan", "East Asia", "9", "20", "10.9", "ok"},
			{"India", "South Asia", "12.3", "", "3.0", "ok"},
			{"Korea", "East Asia", "9", "18", "8.1", "ok"},
			{"Laos", "South-East Asia", "7", "x", "2.5", "ok"},
			{"China", "East Asia", "9.8", "30", "5.4", "ok"},
		},
		config.DashboardConfig{DefaultCancer: breast},
	)
	return state
}
