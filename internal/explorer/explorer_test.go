package explorer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const baseDir = "/logs"

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

// addDataset writes metrics/<dataset>.csv and, when hyperparams is not
// empty, hyperparameters/<dataset>_hyperparameters<ext>.
func addDataset(t *testing.T, fs afero.Fs, folder, dataset, metrics, ext, hyperparams string) {
	t.Helper()
	writeFile(t, fs, filepath.Join(baseDir, folder, "metrics", dataset+".csv"), metrics)
	if hyperparams != "" {
		writeFile(t, fs, filepath.Join(baseDir, folder, "hyperparameters", dataset+"_hyperparameters"+ext), hyperparams)
	}
}

func newTestExplorer(t *testing.T, fs afero.Fs, opts ...Option) (*Explorer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts = append([]Option{WithFs(fs), WithLogger(zerolog.New(&buf))}, opts...)
	return New(opts...), &buf
}

func logLines(buf *bytes.Buffer) []string {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

const sampleMetrics = `timestamp,reward,loss
2024-01-01 10:00:00,1.5,0.9
2024-01-01 10:01:00,2.5,0.7
`
