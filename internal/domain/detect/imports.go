package detect

import (
	"fmt"
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

// stdlibModules are the top-level packages shipped with the Mojo standard
// library. Anything else in an import is treated as project-local.
var stdlibModules = map[string]bool{
	"algorithm": true, "base64": true, "benchmark": true, "bit": true,
	"buffer": true, "builtin": true, "collections": true, "complex": true,
	"gpu": true, "hashlib": true, "layout": true, "math": true,
	"memory": true, "os": true, "pathlib": true, "python": true,
	"random": true, "stdlib": true, "subprocess": true, "sys": true,
	"tempfile": true, "testing": true, "time": true, "utils": true,
}

// deprecatedPlatformChecks lists retired sys.info platform-detection names
// with their CompilationTarget replacements, in a fixed order so output is
// reproducible.
var deprecatedPlatformChecks = []struct {
	name        string
	replacement string
}{
	{"is_x86", "CompilationTarget.is_x86()"},
	{"has_sse4", "CompilationTarget.has_sse4()"},
	{"has_avx", "CompilationTarget.has_avx()"},
	{"has_avx2", "CompilationTarget.has_avx2()"},
	{"has_avx512f", "CompilationTarget.has_avx512f()"},
	{"has_neon", "CompilationTarget.has_neon()"},
}

// Imports checks import hygiene: no relative imports, standard library
// imports before project-local ones, no retired platform-detection names,
// and each module imported from at most once.
func Imports(text, path string, cfg domain.CheckConfig) []domain.Violation {
	lines := textscan.SplitLines(text)
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)

	var out []domain.Violation
	seenLocal := false
	firstImport := map[string]int{}

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}

		trimmed := strings.TrimSpace(line)
		module, ok := importedModule(trimmed)
		if !ok {
			continue
		}

		if first, dup := firstImport[module]; dup {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryImportPattern,
				Message:    fmt.Sprintf("module %q already imported on line %d", module, first),
				Suggestion: "consolidate into a single import statement",
				Severity:   domain.SeverityObservation,
			})
		} else {
			firstImport[module] = i + 1
		}

		if strings.HasPrefix(module, ".") {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryImportPattern,
				Message:    fmt.Sprintf("relative import %q", module),
				Suggestion: "import from the package root instead of using a leading dot",
				Severity:   domain.SeverityError,
			})
			seenLocal = true
			continue
		}

		root := strings.SplitN(module, ".", 2)[0]
		if stdlibModules[root] {
			if seenLocal {
				out = append(out, domain.Violation{
					File:       path,
					Line:       i + 1,
					Category:   domain.CategoryImportPattern,
					Message:    fmt.Sprintf("standard library import %q appears after project imports", module),
					Suggestion: "group standard library imports before project imports",
					Severity:   domain.SeverityWarning,
				})
			}
			if root == "sys" {
				out = append(out, deprecatedPlatformViolations(trimmed, path, i+1)...)
			}
		} else {
			seenLocal = true
		}
	}

	return out
}

// importedModule returns the module path of an import statement, or false
// when the line is not an import.
func importedModule(trimmed string) (string, bool) {
	switch {
	case strings.HasPrefix(trimmed, "from "):
		rest := strings.TrimPrefix(trimmed, "from ")
		fields := strings.Fields(rest)
		if len(fields) >= 2 && fields[1] == "import" {
			return fields[0], true
		}
		return "", false
	case strings.HasPrefix(trimmed, "import "):
		rest := strings.TrimPrefix(trimmed, "import ")
		fields := strings.Fields(rest)
		if len(fields) >= 1 {
			return fields[0], true
		}
		return "", false
	default:
		return "", false
	}
}

func deprecatedPlatformViolations(trimmed, path string, line int) []domain.Violation {
	var out []domain.Violation
	for _, dep := range deprecatedPlatformChecks {
		if !containsIdentifier(trimmed, dep.name) {
			continue
		}
		out = append(out, domain.Violation{
			File:       path,
			Line:       line,
			Category:   domain.CategoryImportPattern,
			Message:    fmt.Sprintf("deprecated platform detection %q", dep.name),
			Suggestion: fmt.Sprintf("use %s from sys.info", dep.replacement),
			Severity:   domain.SeverityError,
		})
	}
	return out
}

// containsIdentifier reports whether s contains name as a whole identifier,
// not as a substring of a longer one (has_avx must not match has_avx512f).
func containsIdentifier(s, name string) bool {
	for start := 0; ; {
		idx := strings.Index(s[start:], name)
		if idx < 0 {
			return false
		}
		idx += start
		before := idx == 0 || !isIdentRune(rune(s[idx-1]))
		afterIdx := idx + len(name)
		after := afterIdx >= len(s) || !isIdentRune(rune(s[afterIdx]))
		if before && after {
			return true
		}
		start = idx + 1
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
