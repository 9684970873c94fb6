package explorer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ListFolders returns the names of the immediate subdirectories of baseDir.
// The order is that of the directory listing. A missing or unreadable
// baseDir yields an error wrapping ErrMissingRoot.
func (e *Explorer) ListFolders(baseDir string) ([]string, error) {
	entries, err := afero.ReadDir(e.fs, baseDir)
	if err != nil {
		return nil, &artifactError{kind: ErrMissingRoot, path: baseDir, err: err}
	}

	folders := make([]string, 0, len(entries))
	for _, entry := range entries {
		if e.isDir(filepath.Join(baseDir, entry.Name()), entry) {
			folders = append(folders, entry.Name())
		}
	}
	return folders, nil
}

// isDir follows symlinks so that linked experiment folders are listed too.
func (e *Explorer) isDir(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := e.fs.Stat(path)
	return err == nil && target.IsDir()
}

// ListDatasets returns the sorted, duplicate-free union of metrics dataset
// names across folders. Folders without a metrics directory contribute
// nothing.
func (e *Explorer) ListDatasets(folders []string, baseDir string) []string {
	seen := make(map[string]struct{})
	for _, folder := range folders {
		for _, name := range e.folderDatasets(baseDir, folder) {
			seen[name] = struct{}{}
		}
	}

	datasets := make([]string, 0, len(seen))
	for name := range seen {
		datasets = append(datasets, name)
	}
	sort.Strings(datasets)
	return datasets
}

// folderDatasets lists the metrics dataset names of a single folder.
func (e *Explorer) folderDatasets(baseDir, folder string) []string {
	dir := filepath.Join(baseDir, folder, e.layout.MetricsDir)

	exists, err := afero.DirExists(e.fs, dir)
	if err != nil || !exists {
		return nil
	}

	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		e.logger.Warn().
			Str("folder", folder).
			Str("path", dir).
			Err(err).
			Msg("skipping unreadable metrics directory")
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), e.layout.MetricsExt) {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), e.layout.MetricsExt)
		if base == "" {
			continue
		}
		names = append(names, base)
	}
	return names
}
