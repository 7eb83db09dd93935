package testkit

import (
	"math"
	"math/rand"
	"strconv"

	"cancerdash/domain/cancer"
)

// AsiaGeneratorConfig configures the synthetic WHO Asia dataset
type AsiaGeneratorConfig struct {
	Seed int64 `json:"seed"`
	// MissingRate is the chance that any rate cell is left blank.
	MissingRate float64 `json:"missing_rate"`
}

// DefaultAsiaConfig returns a complete table with no blanks
func DefaultAsiaConfig() AsiaGeneratorConfig {
	return AsiaGeneratorConfig{Seed: 42}
}

// AsiaCountries lists the generated countries and their regions, in file order.
var AsiaCountries = []struct {
	Country string
	Region  string
}{
	{"China", "East Asia"},
	{"Japan", "East Asia"},
	{"Mongolia", "East Asia"},
	{"Republic of Korea", "East Asia"},
	{"India", "South Asia"},
	{"Pakistan", "South Asia"},
	{"Bangladesh", "South Asia"},
	{"Nepal", "South Asia"},
	{"Sri Lanka", "South Asia"},
	{"Bhutan", "South Asia"},
	{"Maldives", "South Asia"},
	{"Indonesia", "South-East Asia"},
	{"Thailand", "South-East Asia"},
	{"Viet Nam", "South-East Asia"},
	{"Philippines", "South-East Asia"},
	{"Malaysia", "South-East Asia"},
	{"Myanmar", "South-East Asia"},
	{"Cambodia", "South-East Asia"},
	{"Singapore", "South-East Asia"},
	{"Kazakhstan", "Central Asia"},
	{"Uzbekistan", "Central Asia"},
	{"Kyrgyzstan", "Central Asia"},
	{"Iran", "Western Asia"},
	{"Saudi Arabia", "Western Asia"},
	{"Jordan", "Western Asia"},
}

// rateColumn is a generated numeric column with a plausible value range.
type rateColumn struct {
	Name     string
	Min, Max float64
}

var asiaColumns = []rateColumn{
	{"Breast_cancer_deaths_per_100_000_women", 6, 28},
	{"Lung_cancer_deaths_per_100_000", 4, 45},
	{"Cervical_cancer_deaths_per_100_000_women", 1, 18},
	{"Stomach_cancer_deaths_per_100_000", 2, 30},
	{"Liver_cancer_deaths_per_100_000", 2, 35},
	{"Health_expenditure_pct_gdp", 1.5, 11},
	{"Physicians_per_1000", 0.1, 4},
}

// AsiaDataGenerator generates a per-country cancer statistics table
type AsiaDataGenerator struct {
	config AsiaGeneratorConfig
	rng    *rand.Rand
}

// NewAsiaDataGenerator creates a generator; equal seeds give equal tables.
func NewAsiaDataGenerator(config AsiaGeneratorConfig) *AsiaDataGenerator {
	return &AsiaDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Headers returns Country, Region and the rate columns.
func (g *AsiaDataGenerator) Headers() []string {
	headers := []string{cancer.ColumnCountry, cancer.ColumnRegion}
	for _, c := range asiaColumns {
		headers = append(headers, c.Name)
	}
	return headers
}

// Generate returns the header row and one row per country.
func (g *AsiaDataGenerator) Generate() ([]string, [][]string) {
	rows := make([][]string, 0, len(AsiaCountries))
	for _, c := range AsiaCountries {
		row := []string{c.Country, c.Region}
		for _, col := range asiaColumns {
			if g.config.MissingRate > 0 && g.rng.Float64() < g.config.MissingRate {
				row = append(row, "")
				continue
			}
			v := col.Min + g.rng.Float64()*(col.Max-col.Min)
			row = append(row, strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64))
		}
		rows = append(rows, row)
	}
	return g.Headers(), rows
}

// Table generates the dataset straight into a cancer.Table.
func (g *AsiaDataGenerator) Table() (*cancer.Table, error) {
	headers, rows := g.Generate()
	return cancer.NewTable(headers, rows)
}
