package explorer

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/imishinist/rlboard/internal/models"
	"github.com/imishinist/rlboard/internal/parser"
)

// artifactError carries the path that failed to load. It matches its kind
// sentinel and unwraps to the underlying cause.
type artifactError struct {
	kind error
	path string
	err  error
}

func (e *artifactError) Error() string {
	if e.err == nil {
		return e.kind.Error() + ": " + e.path
	}
	return e.kind.Error() + ": " + e.path + ": " + e.err.Error()
}

func (e *artifactError) Is(target error) bool {
	return target == e.kind
}

func (e *artifactError) Unwrap() error {
	return e.err
}

// LoadCombined loads every (folder, dataset) pair, folders outer and
// datasets inner, in input order. Pairs with a missing or malformed
// artifact are logged once and skipped; LoadCombined itself never fails.
func (e *Explorer) LoadCombined(folders, datasets []string, baseDir string) []models.Bundle {
	bundles := make([]models.Bundle, 0, len(folders)*len(datasets))
	for _, folder := range folders {
		for _, dataset := range datasets {
			bundle, err := e.LoadBundle(baseDir, folder, dataset)
			if err != nil {
				e.logSkip(folder, dataset, err, "skipping dataset")
				continue
			}
			bundles = append(bundles, *bundle)
		}
	}
	return bundles
}

// LoadBundle loads one dataset of one folder. Errors wrap ErrMissingArtifact
// or ErrMalformedArtifact.
func (e *Explorer) LoadBundle(baseDir, folder, dataset string) (*models.Bundle, error) {
	metricsPath := e.layout.MetricsPath(baseDir, folder, dataset)
	if exists, _ := afero.Exists(e.fs, metricsPath); !exists {
		return nil, &artifactError{kind: ErrMissingArtifact, path: metricsPath}
	}

	hyperparametersPath, ok := e.findHyperparameters(baseDir, folder, dataset)
	if !ok {
		return nil, &artifactError{kind: ErrMissingArtifact, path: e.layout.HyperparametersCandidates(baseDir, folder, dataset)[0]}
	}

	var table *models.Table
	err := e.readFile(metricsPath, func(r io.Reader) error {
		var err error
		table, err = parser.ParseCSVMetrics(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	doc, err := e.parseHyperparameters(hyperparametersPath)
	if err != nil {
		return nil, err
	}

	tagged := table.
		WithColumn(models.ColumnFolder, folder).
		WithColumn(models.ColumnDataset, dataset).
		WithColumn(models.ColumnLabel, models.DisplayLabel(folder, dataset))

	return &models.Bundle{
		Folder:          folder,
		Dataset:         dataset,
		Metrics:         tagged,
		Hyperparameters: doc.Params,
		Extra:           doc.Extra,
	}, nil
}

// LoadHyperparameters reads the hyperparameter document of one dataset.
func (e *Explorer) LoadHyperparameters(baseDir, folder, dataset string) (*models.HyperparametersDocument, error) {
	path, ok := e.findHyperparameters(baseDir, folder, dataset)
	if !ok {
		return nil, &artifactError{kind: ErrMissingArtifact, path: e.layout.HyperparametersCandidates(baseDir, folder, dataset)[0]}
	}
	return e.parseHyperparameters(path)
}

func (e *Explorer) parseHyperparameters(path string) (*models.HyperparametersDocument, error) {
	var doc *models.HyperparametersDocument
	err := e.readFile(path, func(r io.Reader) error {
		var err error
		doc, err = parser.ParseHyperparameters(path, r)
		return err
	})
	return doc, err
}

func (e *Explorer) findHyperparameters(baseDir, folder, dataset string) (string, bool) {
	for _, path := range e.layout.HyperparametersCandidates(baseDir, folder, dataset) {
		if exists, _ := afero.Exists(e.fs, path); exists {
			return path, true
		}
	}
	return "", false
}

// readFile opens path, hands it to parse and closes it before returning.
func (e *Explorer) readFile(path string, parse func(io.Reader) error) error {
	file, err := e.fs.Open(path)
	if err != nil {
		return &artifactError{kind: ErrMissingArtifact, path: path, err: err}
	}
	defer file.Close()

	if err := parse(file); err != nil {
		return &artifactError{kind: ErrMalformedArtifact, path: path, err: err}
	}
	return nil
}

func (e *Explorer) logSkip(folder, dataset string, err error, msg string) {
	event := e.logger.Warn().
		Str("folder", folder).
		Str("dataset", dataset)

	var ae *artifactError
	if errors.As(err, &ae) {
		event = event.Str("path", ae.path)
	}
	event.Err(err).Msg(msg)
}
