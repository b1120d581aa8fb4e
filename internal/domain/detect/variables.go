package detect

import (
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

// Variables checks variable declaration hygiene. Mojo dropped the immutable
// `let` binding; `var` is the single declaration form, so any surviving
// `let` is a hard error.
func Variables(text, path string, cfg domain.CheckConfig) []domain.Violation {
	lines := textscan.SplitLines(text)
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)

	var out []domain.Violation

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "let ") {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryVariablePattern,
				Message:    "legacy `let` binding",
				Suggestion: "declare with `var`; the `let` keyword was removed from the language",
				Severity:   domain.SeverityError,
			})
		}
	}

	return out
}
