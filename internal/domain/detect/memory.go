package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

// ownedPointerParam matches a raw pointer parameter the function takes
// ownership of. Borrowed and mutable references (`borrowed`, `mut`, `read`)
// are never the caller's leak to report.
var ownedPointerParam = regexp.MustCompile(`owned\s+([A-Za-z_][A-Za-z0-9_]*)\s*:\s*UnsafePointer`)

// Memory applies the possible-leak heuristic: a function that owns an
// UnsafePointer parameter and never calls .free() in its body probably leaks
// it. The check is loose: a .free() call anywhere in the body satisfies it,
// even when it frees a different pointer.
func Memory(text, path string, cfg domain.CheckConfig) []domain.Violation {
	lines := textscan.SplitLines(text)
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)

	var out []domain.Violation

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}
		if fnHeader.FindStringSubmatch(line) == nil {
			continue
		}

		header := headerText(lines, i)
		params := ownedPointerParam.FindAllStringSubmatch(header, -1)
		if len(params) == 0 {
			continue
		}

		body, _ := textscan.Body(lines, i)
		if body == nil || isKernelBody(body) {
			continue
		}

		freed := false
		for _, l := range body {
			if strings.Contains(l, ".free(") {
				freed = true
				break
			}
		}
		if freed {
			continue
		}

		for _, p := range params {
			out = append(out, domain.Violation{
				File:       path,
				Line:       i + 1,
				Category:   domain.CategoryMemoryManagement,
				Message:    fmt.Sprintf("owned pointer %q is never freed: possible leak", p[1]),
				Suggestion: "free the pointer before returning or hand ownership onward",
				Severity:   domain.SeverityWarning,
			})
		}
	}

	return out
}

// headerText joins the header's physical lines so parameters declared on
// continuation lines are seen too.
func headerText(lines []string, header int) string {
	end := textscan.HeaderEnd(lines, header)
	if end < 0 {
		end = header
	}
	return strings.Join(lines[header:end+1], " ")
}

// isKernelBody reports whether the body reads like a GPU kernel; kernels
// never free device pointers themselves.
func isKernelBody(body []string) bool {
	for _, l := range body {
		for _, ind := range kernelIndicators {
			if containsIdentifier(l, ind) {
				return true
			}
		}
	}
	return false
}
