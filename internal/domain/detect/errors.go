package detect

import (
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

// ErrorHandling checks exception hygiene: catch-all handlers that swallow
// everything, and Error values raised without a message to debug by.
func ErrorHandling(text, path string, cfg domain.CheckConfig) []domain.Violation {
	lines := textscan.SplitLines(text)
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)

	var out []domain.Violation

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}
		trimmed := strings.TrimSpace(line)

		if trimmed == "except:" {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryErrorHandling,
				Message:    "catch-all `except:` without a bound error",
				Suggestion: "bind the error (`except e:`) and handle or re-raise it",
				Severity:   domain.SeverityWarning,
			})
		}

		if strings.Contains(trimmed, "Error()") || strings.Contains(trimmed, `Error("")`) {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryErrorHandling,
				Message:    "Error constructed without a message",
				Suggestion: "include a descriptive message in the Error",
				Severity:   domain.SeveritySuggestion,
			})
		}
	}

	return out
}
