// Package csvimport parses lead spreadsheets exported as CSV.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/leadfunnel/internal/ports/primary"
)

// RequiredHeaders must all be present, in any order and case.
var RequiredHeaders = []string{"name", "company", "phone"}

// Placeholder replaces empty cells.
const Placeholder = "N/A"

var (
	// ErrEmptyFile is returned for input with no header row.
	ErrEmptyFile = errors.New("file is empty")
	// ErrMissingHeaders is returned when a required column is absent.
	ErrMissingHeaders = fmt.Errorf("CSV must contain the following headers: %s", strings.Join(RequiredHeaders, ", "))
	// ErrNoRows is returned when the header is followed by no usable rows.
	ErrNoRows = errors.New("no valid lead data found in the file")
)

// ParseFile opens path and parses it.
func ParseFile(path string) ([]primary.ImportRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a header row followed by lead rows.
// Extra columns are ignored, blank rows are skipped and empty cells become "N/A".
func Parse(r io.Reader) ([]primary.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}
	for _, req := range RequiredHeaders {
		if _, ok := columns[req]; !ok {
			return nil, ErrMissingHeaders
		}
	}

	var rows []primary.ImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if blank(record) {
			continue
		}

		rows = append(rows, primary.ImportRow{
			Name:    cell(record, columns["name"]),
			Company: cell(record, columns["company"]),
			Phone:   cell(record, columns["phone"]),
		})
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return Placeholder
	}
	v := strings.TrimSpace(record[i])
	if v == "" {
		return Placeholder
	}
	return v
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
