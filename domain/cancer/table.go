package cancer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"cancerdash/internal/errors"
)

// Column names every dataset must carry.
const (
	ColumnCountry = "Country"
	ColumnRegion  = "Region"
)

// AllRegions is the region option that disables the region filter.
const AllRegions = "All"

// Row is one country's record. Cells are held in table column order.
type Row struct {
	Index   int    `json:"index"` // position in the source file, 0-based
	Country string `json:"country"`
	Region  string `json:"region"`
	cells   []string
}

// Table is the in-memory cancer statistics table. It is never modified
// after NewTable returns, so it is safe for concurrent readers.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// NewTable builds a table from a header row and data rows. Country and
// Region columns are required.
func NewTable(headers []string, rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.DataLoad("table has no data rows")
	}

	t := &Table{
		columns: append([]string(nil), headers...),
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}

	countryIdx, ok := t.index[ColumnCountry]
	if !ok {
		return nil, errors.DataLoad(fmt.Sprintf("required column %q is missing", ColumnCountry))
	}
	regionIdx, ok := t.index[ColumnRegion]
	if !ok {
		return nil, errors.DataLoad(fmt.Sprintf("required column %q is missing", ColumnRegion))
	}

	t.rows = make([]Row, len(rows))
	for i, raw := range rows {
		cells := make([]string, len(headers))
		copy(cells, raw)
		t.rows[i] = Row{
			Index:   i,
			Country: cells[countryIdx],
			Region:  cells[regionIdx],
			cells:   cells,
		}
	}
	return t, nil
}

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns every row in file order.
func (t *Table) Rows() []Row {
	return append([]Row(nil), t.rows...)
}

// HasColumn reports whether name is a column of the table.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Filter returns the working set for a region: every row for AllRegions,
// otherwise rows whose Region equals region exactly. An unmatched region
// yields an empty slice.
func (t *Table) Filter(region string) []Row {
	if region == AllRegions {
		return t.Rows()
	}
	var out []Row
	for _, r := range t.rows {
		if r.Region == region {
			out = append(out, r)
		}
	}
	return out
}

// Cell returns the raw text of column for row.
func (t *Table) Cell(row Row, column string) (string, error) {
	i, ok := t.index[column]
	if !ok {
		return "", errors.UnknownColumn(column)
	}
	if i >= len(row.cells) {
		return "", nil
	}
	return row.cells[i], nil
}

// Value parses column for row as a number. An empty cell reports
// ok=false without error; text that is not a number is an error.
func (t *Table) Value(row Row, column string) (v float64, ok bool, err error) {
	raw, err := t.Cell(row, column)
	if err != nil {
		return 0, false, err
	}
	return ParseRate(raw, column, row.Country)
}

// thousandsGrouped matches numbers with well-formed comma grouping such as
// 1,204.5 or -12,000.
var thousandsGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)

// ParseRate parses a mortality-rate cell. Commas are accepted only as
// thousands separators; blank and NaN cells are missing values. Infinite
// values and decimal commas ("12,3") are not numbers.
func ParseRate(raw, column, country string) (float64, bool, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, false, nil
	}
	if strings.Contains(s, ",") {
		if !thousandsGrouped.MatchString(s) {
			return 0, false, errors.NonNumericValue(column, country, raw)
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false, errors.NonNumericValue(column, country, raw)
	}
	return v, true, nil
}

// RegionOptions returns AllRegions followed by each distinct Region value
// once, in order of first appearance. Blank regions are skipped.
func (t *Table) RegionOptions() []string {
	seen := map[string]bool{AllRegions: true}
	out := []string{AllRegions}
	for _, r := range t.rows {
		if r.Region == "" || seen[r.Region] {
			continue
		}
		seen[r.Region] = true
		out = append(out, r.Region)
	}
	return out
}

// CancerColumns returns the columns whose lowercase name contains
// "cancer", in column order.
func (t *Table) CancerColumns() []string {
	var out []string
	for _, c := range t.columns {
		if strings.Contains(strings.ToLower(c), "cancer") {
			out = append(out, c)
		}
	}
	return out
}

// SelectColumns checks an explicit list of mortality-rate columns against
// the table and returns it unchanged when every entry exists.
func (t *Table) SelectColumns(names []string) ([]string, error) {
	var missing []string
	for _, n := range names {
		if !t.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrap(errors.UnknownColumn(strings.Join(missing, ", ")), "configured cancer columns are not in the table")
	}
	return append([]string(nil), names...), nil
}
