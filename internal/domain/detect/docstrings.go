package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

var fnHeader = regexp.MustCompile(`^\s*(fn|def)\s+([A-Za-z_][A-Za-z0-9_]*)\s*[\(\[]`)

// Docstrings checks documentation completeness: every function carries a
// docstring (structs are handled by the struct detector), and present
// docstrings are assessed for quality.
func Docstrings(text, path string, cfg domain.CheckConfig) []domain.Violation {
	lines := textscan.SplitLines(text)
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)

	var out []domain.Violation

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}
		m := fnHeader.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[2]

		docLine := docstringLine(lines, i)
		if docLine < 0 {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryDocstring,
				Message:    fmt.Sprintf("function %s has no docstring", name),
				Suggestion: "document what the function does, its arguments and its return value",
				Severity:   domain.SeverityWarning,
			})
			continue
		}

		out = append(out, AssessDocstring(lines, docLine, path, name)...)
	}

	return out
}

// docstringLine returns the index of the line opening the declaration's
// docstring, or -1 when the first non-blank line after the header is not a
// docstring.
func docstringLine(lines []string, header int) int {
	end := textscan.HeaderEnd(lines, header)
	if end < 0 {
		end = header
	}
	for i := end + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, textscan.Delimiter) {
			return i
		}
		return -1
	}
	return -1
}
