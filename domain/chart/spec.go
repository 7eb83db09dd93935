package chart

// CategoryOrderTotalDescending orders x-axis categories by bar value,
// largest first.
const CategoryOrderTotalDescending = "total descending"

// Spec is the declarative bar chart handed to the rendering layer: the
// browser draws it as SVG and the PNG endpoint draws it with go-chart.
type Spec struct {
	Title   string        `json:"title"`
	XAxis   Axis          `json:"xaxis"`
	YAxis   Axis          `json:"yaxis"`
	Bars    []Bar         `json:"bars"`
	Legend  []LegendEntry `json:"legend"`
	Summary Summary       `json:"summary"`
}

// Axis describes one chart axis. Categories is set on the category axis
// only and lists bar labels in display order.
type Axis struct {
	Title         string   `json:"title"`
	CategoryOrder string   `json:"categoryorder,omitempty"`
	Categories    []string `json:"categories,omitempty"`
}

// Bar is one country's bar. Missing bars have no height and are drawn as
// an empty slot.
type Bar struct {
	Country string  `json:"country"`
	Region  string  `json:"region"`
	Value   float64 `json:"value"`
	Missing bool    `json:"missing,omitempty"`
	Color   string  `json:"color"`
}

// LegendEntry maps a country to its color.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Summary describes the valued bars of the chart.
type Summary struct {
	Count   int     `json:"count"`
	Missing int     `json:"missing"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Empty reports whether the chart has no bars at all.
func (s *Spec) Empty() bool { return len(s.Bars) == 0 }

// Valued returns the bars that carry a value, in display order.
func (s *Spec) Valued() []Bar {
	var out []Bar
	for _, b := range s.Bars {
		if !b.Missing {
			out = append(out, b)
		}
	}
	return out
}
