package detect

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/lifecycle"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

// maxStructNameWords bounds how many CamelCase words a struct name may carry
// before it reads like a sentence.
const maxStructNameWords = 5

// Structs checks struct declaration hygiene: every struct carries a
// docstring, struct names are PascalCase and reasonably short, and declared
// Copyable/Movable conformances line up with the lifecycle methods the
// struct actually implements.
func Structs(text, path string, cfg domain.CheckConfig) []domain.Violation {
	lines := textscan.SplitLines(text)
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)

	var out []domain.Violation

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}
		info, ok := lifecycle.ParseStructHeader(line)
		if !ok {
			continue
		}

		if !docstringFollows(lines, i) {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryStructPattern,
				Message:    fmt.Sprintf("struct %s has no docstring", info.Name),
				Suggestion: "add a docstring describing the struct's purpose",
				Severity:   domain.SeverityError,
			})
		}

		out = append(out, nameViolations(info.Name, path, i+1)...)

		if body, start := textscan.Body(lines, i); body != nil {
			analysis := lifecycle.Analyze(body)
			out = append(out, lifecycle.Correspond(info, analysis, path, start)...)
		}
	}

	return out
}

// docstringFollows reports whether the first non-blank line after the
// declaration header opens a docstring.
func docstringFollows(lines []string, header int) bool {
	end := textscan.HeaderEnd(lines, header)
	if end < 0 {
		end = header
	}
	for i := end + 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, textscan.Delimiter)
	}
	return false
}

func nameViolations(name, path string, line int) []domain.Violation {
	var out []domain.Violation

	if !isPascalCase(name) {
		out = append(out, domain.Violation{
			File:       path,
			Line:       line,
			Category:   domain.CategoryStructPattern,
			Message:    fmt.Sprintf("struct name %q is not PascalCase", name),
			Suggestion: "rename the struct to PascalCase",
			Severity:   domain.SeverityWarning,
		})
		return out
	}

	if words := camelcase.Split(name); len(words) > maxStructNameWords {
		out = append(out, domain.Violation{
			File:       path,
			Line:       line,
			Category:   domain.CategoryStructPattern,
			Message:    fmt.Sprintf("struct name %q spells out %d words", name, len(words)),
			Suggestion: "shorten the name to at most five words",
			Severity:   domain.SeverityWarning,
		})
	}

	return out
}

func isPascalCase(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	return !strings.ContainsRune(name, '_')
}
