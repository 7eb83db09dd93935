package dashboard

import "cancerdash/domain/cancer"

// qualitativePalette is the ten color cycle used for country bars.
var qualitativePalette = []string{
	"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a",
	"#19d3f3", "#ff6692", "#b6e880", "#ff97ff", "#fecb52",
}

// AssignColors gives every country a palette color in order of first
// appearance, cycling when there are more countries than colors. Colors are
// fixed for the whole table so a country keeps its color under any filter.
func AssignColors(rows []cancer.Row) map[string]string {
	colors := make(map[string]string)
	for _, r := range rows {
		if _, ok := colors[r.Country]; ok {
			continue
		}
		colors[r.Country] = qualitativePalette[len(colors)%len(qualitativePalette)]
	}
	return colors
}
