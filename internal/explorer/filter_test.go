package explorer

import (
	"math"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imishinist/rlboard/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestPasses(t *testing.T) {
	alpha := models.FilterSpec{"alpha": {Min: f64(0.1), Max: f64(0.5)}}

	tests := []struct {
		name   string
		params models.Hyperparameters
		spec   models.FilterSpec
		mode   models.FilterMode
		want   bool
	}{
		{"above max", models.Hyperparameters{"alpha": 0.7}, alpha, models.FilterPermissive, false},
		{"inside", models.Hyperparameters{"alpha": 0.3}, alpha, models.FilterPermissive, true},
		{"missing passes", models.Hyperparameters{}, alpha, models.FilterPermissive, true},
		{"below min", models.Hyperparameters{"alpha": 0.05}, alpha, models.FilterPermissive, false},
		{"bounds inclusive low", models.Hyperparameters{"alpha": 0.1}, alpha, models.FilterPermissive, true},
		{"bounds inclusive high", models.Hyperparameters{"alpha": 0.5}, alpha, models.FilterPermissive, true},
		{"numeric string", models.Hyperparameters{"alpha": "0.3"}, alpha, models.FilterPermissive, true},
		{"integer value", models.Hyperparameters{"batch": 64}, models.FilterSpec{"batch": {Min: f64(32)}}, models.FilterPermissive, true},
		{"non-numeric treated as missing", models.Hyperparameters{"alpha": "adam"}, alpha, models.FilterPermissive, true},
		{"bool treated as missing", models.Hyperparameters{"alpha": true}, alpha, models.FilterPermissive, true},
		{"min only", models.Hyperparameters{"gamma": 0.99}, models.FilterSpec{"gamma": {Min: f64(0.9)}}, models.FilterPermissive, true},
		{"max only", models.Hyperparameters{"gamma": 0.99}, models.FilterSpec{"gamma": {Max: f64(0.9)}}, models.FilterPermissive, false},
		{"unbounded entry ignored", models.Hyperparameters{}, models.FilterSpec{"gamma": {}}, models.FilterStrict, true},
		{"empty spec", models.Hyperparameters{"alpha": 100.0}, models.FilterSpec{}, models.FilterPermissive, true},
		{"strict missing fails", models.Hyperparameters{}, alpha, models.FilterStrict, false},
		{"strict non-numeric fails", models.Hyperparameters{"alpha": "adam"}, alpha, models.FilterStrict, false},
		{"strict inside", models.Hyperparameters{"alpha": 0.3}, alpha, models.FilterStrict, true},
		{"nan treated as missing", models.Hyperparameters{"alpha": "NaN"}, alpha, models.FilterPermissive, true},
		{"strict nan fails", models.Hyperparameters{"alpha": math.NaN()}, alpha, models.FilterStrict, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Passes(tt.params, tt.spec, tt.mode))
		})
	}
}

func TestPasses_AndAcrossNames(t *testing.T) {
	spec := models.FilterSpec{
		"alpha": {Min: f64(0.1), Max: f64(0.5)},
		"gamma": {Min: f64(0.9)},
		"lr":    {Max: f64(0.01)},
	}

	assert.True(t, Passes(models.Hyperparameters{"alpha": 0.2, "gamma": 0.95, "lr": 0.001}, spec, models.FilterPermissive))
	assert.False(t, Passes(models.Hyperparameters{"alpha": 0.2, "gamma": 0.5, "lr": 0.001}, spec, models.FilterPermissive))
	assert.False(t, Passes(models.Hyperparameters{"alpha": 0.2, "gamma": 0.95, "lr": 0.1}, spec, models.FilterPermissive))
	assert.True(t, Passes(models.Hyperparameters{"alpha": 0.2}, spec, models.FilterPermissive))
}

func TestPasses_OrderIndependent(t *testing.T) {
	params := models.Hyperparameters{"alpha": 0.2, "gamma": 0.5}
	names := []string{"alpha", "gamma", "lr"}
	ranges := map[string]models.Range{
		"alpha": {Min: f64(0.1), Max: f64(0.5)},
		"gamma": {Min: f64(0.9)},
		"lr":    {Max: f64(0.01)},
	}

	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}, {1, 2, 0}}
	for _, order := range orders {
		spec := models.FilterSpec{}
		for _, i := range order {
			spec[names[i]] = ranges[names[i]]
		}
		assert.False(t, Passes(params, spec, models.FilterPermissive))
	}
}

func filterFixture(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	addDataset(t, fs, "runA", "run1", sampleMetrics, ".csv", "alpha,gamma\n0.3,0.9\n")
	addDataset(t, fs, "runB", "run1", sampleMetrics, ".json", `{"alpha": 0.7}`)
	addDataset(t, fs, "runA", "run2", sampleMetrics, ".yaml", "hyperparameters:\n  alpha: 0.7\n")
	addDataset(t, fs, "runB", "run3", sampleMetrics, "", "")
	return fs
}

func TestListDatasetsFiltered_Permissive(t *testing.T) {
	ex, buf := newTestExplorer(t, filterFixture(t))
	spec := models.FilterSpec{"alpha": {Min: f64(0.1), Max: f64(0.5)}}

	got := ex.ListDatasetsFiltered([]string{"runA", "runB"}, baseDir, spec)

	// run3 has no hyperparameters file and is judged on an empty record.
	assert.Equal(t, []string{"run1", "run3"}, got)
	assert.Len(t, logLines(buf), 1)
}

func TestListDatasetsFiltered_Strict(t *testing.T) {
	ex, _ := newTestExplorer(t, filterFixture(t), WithFilterMode(models.FilterStrict))
	spec := models.FilterSpec{"alpha": {Min: f64(0.1), Max: f64(0.5)}}

	assert.Equal(t, []string{"run1"}, ex.ListDatasetsFiltered([]string{"runA", "runB"}, baseDir, spec))
}

func TestListDatasetsFiltered_SingleFolder(t *testing.T) {
	ex, _ := newTestExplorer(t, filterFixture(t))
	spec := models.FilterSpec{"alpha": {Min: f64(0.1), Max: f64(0.5)}}

	assert.Equal(t, []string{"run3"}, ex.ListDatasetsFiltered([]string{"runB"}, baseDir, models.FilterSpec{"alpha": {Max: f64(0.1)}}))
	assert.Equal(t, []string{"run1"}, ex.ListDatasetsFiltered([]string{"runA"}, baseDir, spec))
}

func TestListDatasetsFiltered_EmptySpecMatchesUnfiltered(t *testing.T) {
	ex, _ := newTestExplorer(t, filterFixture(t))
	folders := []string{"runA", "runB"}

	assert.Equal(t, ex.ListDatasets(folders, baseDir), ex.ListDatasetsFiltered(folders, baseDir, models.FilterSpec{}))
}

func TestListDatasetsFiltered_UnboundedSpecSkipsLookup(t *testing.T) {
	ex, buf := newTestExplorer(t, filterFixture(t), WithFilterMode(models.FilterStrict))
	folders := []string{"runA", "runB"}

	got := ex.ListDatasetsFiltered(folders, baseDir, models.FilterSpec{"alpha": {}})

	assert.Equal(t, ex.ListDatasets(folders, baseDir), got)
	assert.Empty(t, logLines(buf))
}

func TestListDatasetsFiltered_SeriesHyperparameters(t *testing.T) {
	fs := afero.NewMemMapFs()
	addDataset(t, fs, "runA", "run1", sampleMetrics, ".csv", ",0\nalpha,0.3\ngamma,0.9\n")
	addDataset(t, fs, "runA", "run2", sampleMetrics, ".csv", ",0\nalpha,0.05\n")
	ex, buf := newTestExplorer(t, fs)

	got := ex.ListDatasetsFiltered([]string{"runA"}, baseDir, models.FilterSpec{"alpha": {Max: f64(0.1)}})

	require.Empty(t, logLines(buf))
	assert.Equal(t, []string{"run2"}, got)
}
