package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLayout(t *testing.T) {
	state := asiaState(t)
	page := BuildLayout(state)

	assert.Equal(t, "Cancer Impact in Asian Countries", page.Title)
	assert.Equal(t, "my-graph", page.GraphID)

	assert.Equal(t, "region-dropdown", page.Region.ID)
	assert.Equal(t, "All", page.Region.Value)
	assert.Equal(t, []Option{
		{Label: "All", Value: "All"},
		{Label: "South Asia", Value: "South Asia"},
		{Label: "East Asia", Value: "East Asia"},
		{Label: "South-East Asia", Value: "South-East Asia"},
	}, page.Region.Options)

	assert.Equal(t, "cancer-type-dropdown", page.Cancer.ID)
	assert.Equal(t, breast, page.Cancer.Value)
	assert.Len(t, page.Cancer.Options, 2)
}

func TestBuildLayout_NarrativeIsRenderedMarkdown(t *testing.T) {
	page := BuildLayout(scenarioState(t))
	html := string(page.Narrative)

	assert.Equal(t, 5, strings.Count(html, "<h6"))
	assert.Contains(t, html, "Introduction:")
	assert.Contains(t, html, "<code>who_asia_cancer_data</code>")
	assert.Contains(t, html, "<p>")
}

func TestBuildLayout_EmptyDefault(t *testing.T) {
	state, _ := newTestState(t,
		[]string{"Country", "Region", "Lung_cancer"},
		[][]string{{"India", "South Asia", "1"}},
		configWith(breast),
	)

	page := BuildLayout(state)
	assert.Equal(t, "", page.Cancer.Value)
	assert.Equal(t, []Option{{Label: "Lung_cancer", Value: "Lung_cancer"}}, page.Cancer.Options)
}
