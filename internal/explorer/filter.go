package explorer

import (
	"github.com/spf13/afero"

	"github.com/imishinist/rlboard/internal/models"
)

// Passes reports whether h satisfies every bounded range of spec. A name the
// record lacks, or holds a non-numeric value for, passes in permissive mode
// and fails in strict mode.
func Passes(h models.Hyperparameters, spec models.FilterSpec, mode models.FilterMode) bool {
	for name, bounds := range spec {
		if bounds.Unbounded() {
			continue
		}
		value, ok := h.Float(name)
		if !ok {
			if mode == models.FilterStrict {
				return false
			}
			continue
		}
		if !bounds.Contains(value) {
			return false
		}
	}
	return true
}

// ListDatasetsFiltered is ListDatasets restricted to datasets for which at
// least one selected folder holds a metrics file whose hyperparameters pass
// spec. A folder whose hyperparameters cannot be loaded is judged on an
// empty record. A spec without any bound skips the hyperparameter lookup.
func (e *Explorer) ListDatasetsFiltered(folders []string, baseDir string, spec models.FilterSpec) []string {
	candidates := e.ListDatasets(folders, baseDir)
	if !bounded(spec) {
		return candidates
	}

	datasets := make([]string, 0, len(candidates))
	for _, dataset := range candidates {
		if e.anyFolderPasses(folders, baseDir, dataset, spec) {
			datasets = append(datasets, dataset)
		}
	}
	return datasets
}

func (e *Explorer) anyFolderPasses(folders []string, baseDir, dataset string, spec models.FilterSpec) bool {
	for _, folder := range folders {
		exists, err := afero.Exists(e.fs, e.layout.MetricsPath(baseDir, folder, dataset))
		if err != nil || !exists {
			continue
		}

		params := models.Hyperparameters{}
		doc, err := e.LoadHyperparameters(baseDir, folder, dataset)
		if err != nil {
			e.logSkip(folder, dataset, err, "filtering on empty hyperparameters")
		} else {
			params = doc.Params
		}

		if Passes(params, spec, e.mode) {
			return true
		}
	}
	return false
}

func bounded(spec models.FilterSpec) bool {
	for _, r := range spec {
		if !r.Unbounded() {
			return true
		}
	}
	return false
}
