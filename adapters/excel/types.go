package excel

// TableData is a raw sheet: trimmed header names and data rows, each row
// padded to len(Headers) and kept in column order.
type TableData struct {
	Headers []string
	Rows    [][]string
}
