package excel

// ReaderConfig controls which sheet of a workbook is read. CSV files ignore it.
type ReaderConfig struct {
	// SheetName is tried first; when absent from the workbook the first
	// sheet is used.
	SheetName string
}

// DefaultReaderConfig returns the workbook defaults.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{SheetName: "Sheet1"}
}
