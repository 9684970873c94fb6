package models

// Bundle is one successfully loaded (folder, dataset) pair.
type Bundle struct {
	Folder          string          `json:"folder" yaml:"folder"`
	Dataset         string          `json:"dataset" yaml:"dataset"`
	Metrics         *Table          `json:"metrics" yaml:"metrics"`
	Hyperparameters Hyperparameters `json:"hyperparameters" yaml:"hyperparameters"`
	// Extra holds the non-scalar entries and, for nested documents, the
	// keys outside the hyperparameters mapping.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Label is the display identifier of the bundle.
func (b Bundle) Label() string {
	return DisplayLabel(b.Folder, b.Dataset)
}

func DisplayLabel(folder, dataset string) string {
	return folder + " - " + dataset
}

// CombinedTable is every bundle's metrics concatenated into one table.
type CombinedTable struct {
	Table          *Table    `json:"table" yaml:"table"`
	Instants       []Instant `json:"instants" yaml:"-"`
	MetricColumns  []string  `json:"metric_columns" yaml:"metric_columns"`
	TimeColumn     string    `json:"time_column" yaml:"time_column"`
	MissingInstant int       `json:"missing_instants" yaml:"missing_instants"`
}

// Empty reports whether the combined table holds no rows.
func (c *CombinedTable) Empty() bool {
	return c.Table == nil || len(c.Table.Rows) == 0
}
