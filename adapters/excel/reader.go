package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cancerdash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	config   ReaderConfig
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	return NewDataReaderWithConfig(filePath, DefaultReaderConfig())
}

// NewDataReaderWithConfig creates a data reader with an explicit sheet choice.
func NewDataReaderWithConfig(filePath string, config ReaderConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, config: config}
}

// ReadData reads data from Excel or CSV files into structured format
func (r *DataReader) ReadData() (*TableData, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.DataLoad(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath))
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, errors.DataLoad(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
}

// readExcelData reads the configured sheet (or the first one) into structured format
func (r *DataReader) readExcelData() (*TableData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(errors.WithCode(errors.CodeDataLoad, err), "failed to open Excel file")
	}
	defer f.Close()
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheet := r.pickSheet(f.GetSheetList())
	if sheet == "" {
		return nil, errors.DataLoad("Excel file has no sheets")
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(errors.WithCode(errors.CodeDataLoad, err), "failed to read %s", sheet)
	}
	log.Printf("[DataReader] %s read in %.2fms (%d rows)", sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.DataLoad("Excel file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

func (r *DataReader) pickSheet(sheets []string) string {
	for _, s := range sheets {
		if s == r.config.SheetName {
			return s
		}
	}
	if len(sheets) > 0 {
		return sheets[0]
	}
	return ""
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData() (*TableData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(errors.WithCode(errors.CodeDataLoad, err), "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Short trailing rows are padded in processRows.
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.WithCode(errors.CodeDataLoad, err), "failed to read CSV file")
	}
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.DataLoad("CSV file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into TableData, padding or
// truncating every data row to the header width.
func (r *DataReader) processRows(rows [][]string) (*TableData, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		// Strip a UTF-8 BOM left by spreadsheet exports.
		headers[i] = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	}

	dataRows := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		cells := make([]string, len(headers))
		for j := 0; j < len(headers) && j < len(row); j++ {
			cells[j] = strings.TrimSpace(row[j])
		}
		dataRows = append(dataRows, cells)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &TableData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
