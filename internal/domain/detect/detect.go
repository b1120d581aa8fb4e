// Package detect holds the pattern detectors. Each detector is a pure
// function from file text to violations; detectors are independent of each
// other and each re-derives its own line classification, so one family can
// never poison another's view of the file.
package detect

import (
	"github.com/mojolint/mojolint/internal/domain"
)

// Detector inspects raw file text and reports violations. Implementations
// must not touch the filesystem; path is only used to label violations.
type Detector func(text, path string, cfg domain.CheckConfig) []domain.Violation

// All returns every detector family in a fixed order, so violation output is
// reproducible across runs.
func All() []Detector {
	return []Detector{
		Imports,
		Structs,
		Variables,
		GPU,
		Docstrings,
		ErrorHandling,
		Performance,
		Memory,
	}
}

// Run executes every detector family against one file's text.
func Run(text, path string, cfg domain.CheckConfig) []domain.Violation {
	var out []domain.Violation
	for _, d := range All() {
		out = append(out, d(text, path, cfg)...)
	}
	return out
}
