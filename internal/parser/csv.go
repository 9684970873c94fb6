package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/imishinist/rlboard/internal/models"
)

const utf8BOM = "\ufeff"

// ParseCSVMetrics reads a metrics table. The header row is required; a
// leading unnamed index column, as written by pandas, is dropped. Rows
// shorter than the header, as left by a run interrupted mid-write, are padded
// with empty cells; longer rows are rejected.
func ParseCSVMetrics(reader io.Reader) (*models.Table, error) {
	records, err := readCSV(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV metrics: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("failed to parse CSV metrics: empty file")
	}

	header := records[0]
	rows := records[1:]
	for i, row := range rows {
		if len(row) > len(header) {
			return nil, fmt.Errorf("failed to parse CSV metrics: row %d has %d fields, header has %d", i+1, len(row), len(header))
		}
		for len(row) < len(header) {
			row = append(row, "")
		}
		rows[i] = row
	}

	if isIndexColumn(header[0]) && len(header) > 1 {
		header = header[1:]
		for i, row := range rows {
			rows[i] = row[1:]
		}
	}

	for _, name := range header {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("failed to parse CSV metrics: empty column name in header")
		}
	}

	return &models.Table{Columns: header, Rows: rows}, nil
}

// ParseCSVHyperparameters reads a flat hyperparameter record. Two layouts are
// accepted: a header of names followed by one row of values, or a two-column
// listing of name,value rows. The listing header is either name,value
// (key,value) or the index header pandas writes for a Series (",0").
func ParseCSVHyperparameters(reader io.Reader) (*models.HyperparametersDocument, error) {
	records, err := readCSV(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV hyperparameters: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("failed to parse CSV hyperparameters: expected a header and a value row")
	}

	params := make(models.Hyperparameters)
	header := records[0]

	if isPairHeader(header) || isSeriesLayout(records) {
		for i, row := range records[1:] {
			if len(row) != 2 {
				return nil, fmt.Errorf("failed to parse CSV hyperparameters: row %d has %d fields, expected 2", i+1, len(row))
			}
			if row[0] == "" {
				continue
			}
			params[row[0]] = parseScalar(row[1])
		}
		return &models.HyperparametersDocument{Kind: models.DocumentFlat, Params: params}, nil
	}

	if len(records) > 2 {
		return nil, fmt.Errorf("failed to parse CSV hyperparameters: expected one value row, got %d", len(records)-1)
	}
	values := records[1]
	if len(values) != len(header) {
		return nil, fmt.Errorf("failed to parse CSV hyperparameters: value row has %d fields, header has %d", len(values), len(header))
	}
	for i, name := range header {
		if i == 0 && isIndexColumn(name) {
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("failed to parse CSV hyperparameters: empty column name at position %d", i)
		}
		params[name] = parseScalar(values[i])
	}

	return &models.HyperparametersDocument{Kind: models.DocumentFlat, Params: params}, nil
}

func readCSV(reader io.Reader) ([][]string, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)
	}
	return records, nil
}

func isIndexColumn(name string) bool {
	return name == "" || strings.HasPrefix(name, "Unnamed: ")
}

func isPairHeader(header []string) bool {
	if len(header) != 2 {
		return false
	}
	first := strings.ToLower(header[0])
	return (first == "name" || first == "key") && strings.ToLower(header[1]) == "value"
}

// isSeriesLayout matches a pandas Series written with its index: an unnamed
// index header followed by the series name, which defaults to 0. A frame
// written with its index has the same two-column shape but integer row
// labels, so a named series needs a non-integer first row label.
func isSeriesLayout(records [][]string) bool {
	header := records[0]
	if len(header) != 2 || !isIndexColumn(header[0]) {
		return false
	}
	if _, err := strconv.Atoi(header[1]); err == nil {
		return true
	}
	if len(records) < 3 || len(records[1]) == 0 {
		return false
	}
	_, err := strconv.Atoi(records[1][0])
	return err != nil
}

// parseScalar converts a CSV cell into float64, bool or string.
func parseScalar(s string) any {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
