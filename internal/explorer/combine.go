package explorer

import (
	"github.com/imishinist/rlboard/internal/models"
	timeutils "github.com/imishinist/rlboard/internal/time"
)

// Combine concatenates the metrics tables of bundles into one table. Columns
// are the union of all bundle columns in first-seen order; cells a bundle
// lacks are empty. The time column is parsed into instants, unparseable
// cells becoming missing instants. MetricColumns is every column except the
// provenance columns and the time column.
func Combine(bundles []models.Bundle, config models.TimeConfig) (*models.CombinedTable, error) {
	var columns []string
	index := make(map[string]int)
	for _, bundle := range bundles {
		for _, col := range bundle.Metrics.Columns {
			if _, ok := index[col]; !ok {
				index[col] = len(columns)
				columns = append(columns, col)
			}
		}
	}

	table := &models.Table{Columns: columns}
	for _, bundle := range bundles {
		for _, src := range bundle.Metrics.Rows {
			row := make([]string, len(columns))
			for i, col := range bundle.Metrics.Columns {
				if i < len(src) {
					row[index[col]] = src[i]
				}
			}
			table.Rows = append(table.Rows, row)
		}
	}

	instants, err := timeutils.CoerceColumn(table, config)
	if err != nil {
		return nil, err
	}

	missing := 0
	for _, instant := range instants {
		if instant.IsMissing() {
			missing++
		}
	}

	return &models.CombinedTable{
		Table:          table,
		Instants:       instants,
		MetricColumns:  MetricColumns(columns, config.Column),
		TimeColumn:     config.Column,
		MissingInstant: missing,
	}, nil
}

// MetricColumns returns columns without the provenance and time columns.
func MetricColumns(columns []string, timeColumn string) []string {
	excluded := map[string]bool{
		models.ColumnFolder:  true,
		models.ColumnDataset: true,
		models.ColumnLabel:   true,
		timeColumn:           true,
	}

	metrics := make([]string, 0, len(columns))
	for _, col := range columns {
		if !excluded[col] {
			metrics = append(metrics, col)
		}
	}
	return metrics
}
