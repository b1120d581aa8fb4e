package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
)

// mojoExtensions are the file extensions recognized as Mojo source.
var mojoExtensions = []string{".mojo", ".🔥"}

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Discover returns every Mojo source file under root, relative paths sorted
// lexicographically so scan output is reproducible across runs and machines.
// Directories named in the config's exclude list are skipped entirely.
func (s *FileScanner) Discover(root string, cfg domain.CheckConfig) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != absRoot && cfg.ExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if isMojoFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func isMojoFile(name string) bool {
	for _, ext := range mojoExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
