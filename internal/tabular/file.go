package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const bom = "\ufeff"

// ReadHeader reads only the first record of the file. Detection relies on
// this so classifying a file never scans its data rows.
func ReadHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	return stripBOM(header), nil
}

// ReadFile loads the whole file. Records whose field count does not match
// the header are dropped and counted in Table.SkippedRows; I/O and parse
// errors that make the rest of the file unreadable abort the read.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	t := NewTable(stripBOM(header))

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				t.SkippedRows++
				continue
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		t.Append(record)
	}
}

// WriteFile writes a UTF-8-with-BOM CSV with the complete header and one
// record per row. Every cell is written explicitly, unset cells as "".
func WriteFile(path string, columns []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(bom); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func newReader(f *os.File) *csv.Reader {
	r := csv.NewReader(f)
	// WooCommerce exports occasionally carry stray quotes inside cells.
	r.LazyQuotes = true
	return r
}

func stripBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	return header
}
