package dashboard

import (
	"html/template"

	"cancerdash/domain/cancer"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// PageTitle is the page header.
const PageTitle = "Cancer Impact in Asian Countries"

// narrative is shown between the header and the selectors.
const narrative = "###### Introduction:\n" +
	"This study addresses the profound health implications of cancer across Asia, identifying key trends and disparities by region. " +
	"Using comprehensive data, we explore cancer mortality rates, healthcare access, and spending patterns to inform targeted strategies against this disease.\n\n" +
	"###### Visualization Aim:\n" +
	"Our interactive graphs offer insights into cancer prevalence by region and country, made possible with dropdown selectors. " +
	"This visual tool aids stakeholders in pinpointing critical needs and prioritizing interventions.\n\n" +
	"###### Data Insights:\n" +
	"The `who_asia_cancer_data` set aggregates vital statistics, such as cancer-specific mortality, healthcare spending, and professional access, " +
	"shedding light on the healthcare-cancer nexus.\n\n" +
	"###### Emerging Trends:\n" +
	"Preliminary findings reveal a strong link between health investment and cancer mortality rates, emphasizing the need for robust healthcare systems.\n\n" +
	"###### Conclusion:\n" +
	"Early data points to the pivotal role of healthcare investment in combating cancer, underlining that such commitments are key to improving outcomes, " +
	"beyond the measure of national wealth.\n"

// Option is one entry of a dropdown.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown is a selector with its options and initial value.
type Dropdown struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
	Value   string   `json:"value"`
}

// Page is the static description of the dashboard page.
type Page struct {
	Title     string
	Narrative template.HTML
	Region    Dropdown
	Cancer    Dropdown
	GraphID   string
}

// BuildLayout describes the page for a loaded state. It has no side effects.
func BuildLayout(s *State) Page {
	return Page{
		Title:     PageTitle,
		Narrative: RenderMarkdown(narrative),
		Region: Dropdown{
			ID:      RegionDropdownID,
			Label:   "Select a Region (Optional):",
			Options: options(s.RegionOptions),
			Value:   cancer.AllRegions,
		},
		Cancer: Dropdown{
			ID:      CancerDropdownID,
			Label:   "Select a Cancer Type:",
			Options: options(s.CancerOptions),
			Value:   s.DefaultCancer,
		},
		GraphID: GraphID,
	}
}

// RenderMarkdown converts markdown to HTML. The input is trusted page copy.
func RenderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(md), p, r))
}

func options(values []string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Label: v, Value: v}
	}
	return out
}
