package dashboard

import (
	"context"
	"testing"

	"cancerdash/domain/chart"
	"cancerdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(ctx context.Context, args []string) (interface{}, error) {
	return args, nil
}

func TestParseProperty(t *testing.T) {
	p, err := ParseProperty("region-dropdown.value")
	require.NoError(t, err)
	assert.Equal(t, Property{ID: "region-dropdown", Property: "value"}, p)

	p, err = ParseProperty("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "a.b", p.ID)

	for _, bad := range []string{"", "nodot", ".value", "graph."} {
		_, err := ParseProperty(bad)
		assert.Error(t, err, bad)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	out := Property{ID: "g", Property: "figure"}
	in := []Property{{ID: "a", Property: "value"}}

	require.NoError(t, r.Register(Callback{Output: out, Inputs: in, Handler: echoHandler}))

	err := r.Register(Callback{Output: out, Inputs: in, Handler: echoHandler})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err), "duplicate output")

	err = r.Register(Callback{Output: Property{ID: "h", Property: "figure"}, Handler: echoHandler})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err), "no inputs")

	err = r.Register(Callback{Output: Property{ID: "h", Property: "figure"}, Inputs: in})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err), "no handler")

	assert.Len(t, r.Callbacks(), 1)
}

func TestRegistry_DispatchPassesInputsInDeclaredOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Callback{
		Output:  Property{ID: "g", Property: "figure"},
		Inputs:  []Property{{ID: "b", Property: "value"}, {ID: "a", Property: "value"}},
		Handler: echoHandler,
	}))

	got, err := r.Dispatch(context.Background(), "g.figure", map[string]string{"a.value": "1", "b.value": "2", "c.value": "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, got)

	_, err = r.Dispatch(context.Background(), "g.figure", map[string]string{"a.value": "1"})
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = r.Dispatch(context.Background(), "nope.figure", nil)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Dispatch(ctx, "g.figure", map[string]string{"a.value": "1", "b.value": "2"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGraphCallback_DispatchRendersChart(t *testing.T) {
	state := scenarioState(t)

	out, err := state.Callbacks.Dispatch(context.Background(), "my-graph.figure", map[string]string{
		"region-dropdown.value":      "South Asia",
		"cancer-type-dropdown.value": breast,
	})
	require.NoError(t, err)
	spec, ok := out.(*chart.Spec)
	require.True(t, ok)
	require.Len(t, spec.Bars, 1)
	assert.Equal(t, "India", spec.Bars[0].Country)

	_, err = state.Callbacks.Dispatch(context.Background(), "my-graph.figure", map[string]string{
		"region-dropdown.value":      "All",
		"cancer-type-dropdown.value": "Liver_cancer",
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnknownColumn, errors.GetCode(err))
}
