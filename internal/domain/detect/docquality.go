package detect

import (
	"fmt"
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

const (
	// minDocstringChars is the least content a one-line docstring may carry.
	minDocstringChars = 10
	// longDescriptionChars marks a description substantial enough to count
	// as comprehensive on its own.
	longDescriptionChars = 50
)

// AssessDocstring scores the quality of the docstring opening at line start.
// A Raises: section is never required, because not every function raises.
func AssessDocstring(lines []string, start int, path, owner string) []domain.Violation {
	opener := strings.TrimSpace(lines[start])
	content := strings.TrimPrefix(opener, textscan.Delimiter)

	// Single-line docstring: opener and closer on the same physical line.
	if strings.HasSuffix(content, textscan.Delimiter) && len(content) >= len(textscan.Delimiter) {
		content = strings.TrimSuffix(content, textscan.Delimiter)
		if len(strings.TrimSpace(content)) < minDocstringChars {
			return []domain.Violation{{
				File:       path,
				Line:       start + 1,
				Category:   domain.CategoryDocstring,
				Message:    fmt.Sprintf("docstring for %s is too brief", owner),
				Suggestion: "expand the docstring into a full sentence",
				Severity:   domain.SeverityWarning,
			}}
		}
		return nil
	}

	// Multi-line: collect every line until the closing delimiter.
	var block []string
	if strings.TrimSpace(content) != "" {
		block = append(block, content)
	}
	for i := start + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], textscan.Delimiter) {
			tail := strings.TrimSpace(strings.Split(lines[i], textscan.Delimiter)[0])
			if tail != "" {
				block = append(block, tail)
			}
			break
		}
		block = append(block, lines[i])
	}

	description := ""
	hasArgs, hasReturns := false, false
	contentLines := 0
	for _, l := range block {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		contentLines++
		// Only the opening content line counts as the description; prose
		// under a section marker belongs to that section.
		if contentLines == 1 && !isSectionMarker(trimmed) {
			description = trimmed
		}
		switch {
		case strings.HasPrefix(trimmed, "Args:"):
			hasArgs = true
		case strings.HasPrefix(trimmed, "Returns:"):
			hasReturns = true
		}
	}

	hasDescription := len(description) >= minDocstringChars

	signals := 0
	if hasDescription {
		signals++
	}
	if hasArgs {
		signals++
	}
	if hasReturns {
		signals++
	}

	comprehensive := signals >= 2 ||
		len(description) > longDescriptionChars ||
		(contentLines > 3 && hasDescription)
	if comprehensive {
		return nil
	}

	// Most specific deficiency first.
	switch {
	case contentLines == 0 || (!hasDescription && !hasArgs && !hasReturns):
		return []domain.Violation{{
			File:       path,
			Line:       start + 1,
			Category:   domain.CategoryDocstring,
			Message:    fmt.Sprintf("docstring for %s is too brief", owner),
			Suggestion: "describe what the function does",
			Severity:   domain.SeverityWarning,
		}}
	case !hasDescription:
		return []domain.Violation{{
			File:       path,
			Line:       start + 1,
			Category:   domain.CategoryDocstring,
			Message:    fmt.Sprintf("docstring for %s has sections but no description", owner),
			Suggestion: "open the docstring with a one-line summary",
			Severity:   domain.SeverityWarning,
		}}
	default:
		return []domain.Violation{{
			File:       path,
			Line:       start + 1,
			Category:   domain.CategoryDocstring,
			Message:    fmt.Sprintf("docstring for %s is missing Args: and Returns: sections", owner),
			Suggestion: "document arguments and the return value",
			Severity:   domain.SeveritySuggestion,
		}}
	}
}

func isSectionMarker(line string) bool {
	return strings.HasPrefix(line, "Args:") ||
		strings.HasPrefix(line, "Returns:") ||
		strings.HasPrefix(line, "Raises:")
}
