package spreadsheet

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Table is the neutral shape both codecs speak: one header row plus data
// rows. Rows may be ragged; consumers guard their indexes.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported spreadsheet format %q", s)
	}
}

func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported file type %q (expected .csv or .xlsx)", filepath.Ext(name))
	}
}

func Read(format Format, r io.Reader) (*Table, error) {
	if format == FormatXLSX {
		return readXLSX(r)
	}
	return readCSV(r)
}

func Write(format Format, w io.Writer, table *Table) error {
	if format == FormatXLSX {
		return writeXLSX(w, table)
	}
	return writeCSV(w, table)
}
