package detect

import (
	"regexp"
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

var (
	loopHeader   = regexp.MustCompile(`^\s*(for|while)\s`)
	stringConcat = regexp.MustCompile(`\+=\s*(?:"|String\(|str\()`)
	appendCall   = regexp.MustCompile(`\.append\(`)
)

// Performance flags anti-patterns that grind in hot loops: building strings
// by repeated concatenation, and growing a List element by element when the
// final size is known.
func Performance(text, path string, cfg domain.CheckConfig) []domain.Violation {
	lines := textscan.SplitLines(text)
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)

	hasReserve := strings.Contains(text, ".reserve(")

	var out []domain.Violation
	loopIndent := -1 // indentation of the innermost open loop header, -1 when outside

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := textscan.Indentation(line)
		if loopIndent >= 0 && indent <= loopIndent {
			loopIndent = -1
		}
		if loopHeader.MatchString(line) {
			loopIndent = indent
			continue
		}
		if loopIndent < 0 {
			continue
		}

		if stringConcat.MatchString(line) {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryPerformance,
				Message:    "string concatenation inside a loop",
				Suggestion: "collect parts in a List and join once after the loop",
				Severity:   domain.SeverityWarning,
			})
		}

		if appendCall.MatchString(line) && !hasReserve {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryPerformance,
				Message:    "List grown element by element inside a loop",
				Suggestion: "reserve capacity before the loop when the size is known",
				Severity:   domain.SeveritySuggestion,
			})
		}
	}

	return out
}
