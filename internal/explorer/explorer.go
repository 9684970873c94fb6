// Package explorer discovers experiment folders and metrics datasets on disk,
// filters datasets by hyperparameter ranges and loads them into bundles.
//
// Every call re-reads the filesystem; an Explorer holds no state besides its
// collaborators and may be reused freely.
package explorer

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/imishinist/rlboard/internal/models"
	"github.com/imishinist/rlboard/internal/parser"
)

var (
	// ErrMissingRoot is returned when the base directory is absent or unreadable.
	ErrMissingRoot = errors.New("base directory not readable")
	// ErrMissingArtifact marks a dataset whose metrics or hyperparameters file is absent.
	ErrMissingArtifact = errors.New("artifact not found")
	// ErrMalformedArtifact marks a dataset file that exists but cannot be parsed.
	ErrMalformedArtifact = errors.New("artifact malformed")
)

// Layout describes where datasets live inside an experiment folder.
type Layout struct {
	MetricsDir            string
	MetricsExt            string
	HyperparametersDir    string
	HyperparametersSuffix string
}

func DefaultLayout() Layout {
	return Layout{
		MetricsDir:            "metrics",
		MetricsExt:            ".csv",
		HyperparametersDir:    "hyperparameters",
		HyperparametersSuffix: "_hyperparameters",
	}
}

// MetricsPath is <base>/<folder>/<metrics dir>/<dataset><ext>.
func (l Layout) MetricsPath(baseDir, folder, dataset string) string {
	return filepath.Join(baseDir, folder, l.MetricsDir, dataset+l.MetricsExt)
}

// HyperparametersCandidates lists possible hyperparameter file paths in
// lookup order.
func (l Layout) HyperparametersCandidates(baseDir, folder, dataset string) []string {
	dir := filepath.Join(baseDir, folder, l.HyperparametersDir)
	paths := make([]string, 0, len(parser.HyperparametersExtensions))
	for _, ext := range parser.HyperparametersExtensions {
		paths = append(paths, filepath.Join(dir, dataset+l.HyperparametersSuffix+ext))
	}
	return paths
}

type Explorer struct {
	fs     afero.Fs
	layout Layout
	logger zerolog.Logger
	mode   models.FilterMode
}

type Option func(*Explorer)

// WithFs sets the filesystem datasets are read from.
func WithFs(fs afero.Fs) Option {
	return func(e *Explorer) { e.fs = fs }
}

// WithLogger sets the logger receiving skip diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Explorer) { e.logger = logger }
}

func WithLayout(layout Layout) Option {
	return func(e *Explorer) { e.layout = layout }
}

// WithFilterMode selects how missing hyperparameters are treated by
// ListDatasetsFiltered.
func WithFilterMode(mode models.FilterMode) Option {
	return func(e *Explorer) { e.mode = mode }
}

// New returns an Explorer reading the OS filesystem with a silent logger
// unless overridden by opts.
func New(opts ...Option) *Explorer {
	e := &Explorer{
		fs:     afero.NewOsFs(),
		layout: DefaultLayout(),
		logger: zerolog.Nop(),
		mode:   models.FilterPermissive,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
