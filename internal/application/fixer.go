package application

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/lifecycle"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

// placeholderDocstring is the stub inserted where a declaration has no
// documentation.
const placeholderDocstring = `"""TODO: Add docstring."""`

// Transform applies the low-risk rewrites to file text and returns the new
// text with a record of every change. The rewrite set is deliberately
// restricted: relative imports, legacy `let` bindings, missing docstring
// stubs, and trait/trivial-method corrections. Anything riskier stays a
// suggestion in the report.
func Transform(text string, cfg domain.CheckConfig) (string, []domain.AppliedFix) {
	lines := textscan.SplitLines(text)
	var applied []domain.AppliedFix

	lines, fixes := rewriteLineLocal(lines, cfg)
	applied = append(applied, fixes...)

	lines, fixes = fixTraits(lines, cfg)
	applied = append(applied, fixes...)

	lines, fixes = insertDocstrings(lines, cfg)
	applied = append(applied, fixes...)

	return strings.Join(lines, "\n"), applied
}

// rewriteLineLocal handles rewrites confined to a single line: relative
// imports and legacy `let` bindings.
func rewriteLineLocal(lines []string, cfg domain.CheckConfig) ([]string, []domain.AppliedFix) {
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)
	var applied []domain.AppliedFix

	out := make([]string, len(lines))
	copy(out, lines)

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "from .") || strings.HasPrefix(trimmed, "import ."):
			out[i] = strings.Replace(line, " .", " ", 1)
			applied = append(applied, domain.AppliedFix{
				Type:        domain.FixRelativeImport,
				Line:        i + 1,
				Description: "rewrote relative import as absolute",
			})

		case strings.HasPrefix(trimmed, "let "):
			out[i] = strings.Replace(line, "let ", "var ", 1) + "  # TODO: was `let`; verify mutability"
			applied = append(applied, domain.AppliedFix{
				Type:        domain.FixLegacyBinding,
				Line:        i + 1,
				Description: "replaced legacy `let` binding with `var`",
			})
		}
	}

	return out, applied
}

// fixTraits adds missing Copyable/Movable conformances evidenced by trivial
// lifecycle methods and removes the now-redundant methods.
func fixTraits(lines []string, cfg domain.CheckConfig) ([]string, []domain.AppliedFix) {
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)
	var applied []domain.AppliedFix

	type deletion struct{ start, end int } // inclusive line range
	var deletions []deletion

	out := make([]string, len(lines))
	copy(out, lines)

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}
		info, ok := lifecycle.ParseStructHeader(line)
		if !ok {
			continue
		}
		body, start := textscan.Body(lines, i)
		if body == nil {
			continue
		}
		analysis := lifecycle.Analyze(body)

		if analysis.TrivialCopy {
			if !info.HasCopyTrait {
				out[i] = addTrait(out[i], "Copyable")
				applied = append(applied, domain.AppliedFix{
					Type: domain.FixAddTrait, Line: i + 1,
					Description: fmt.Sprintf("added Copyable to struct %s", info.Name),
				})
			}
			if end := methodEnd(lines, start+analysis.CopyLine); end >= 0 {
				deletions = append(deletions, deletion{start + analysis.CopyLine, end})
				applied = append(applied, domain.AppliedFix{
					Type: domain.FixRemoveMethod, Line: start + analysis.CopyLine + 1,
					Description: fmt.Sprintf("removed trivial __copyinit__ from struct %s", info.Name),
				})
			}
		}

		if analysis.TrivialMove {
			if !info.HasMoveTrait {
				out[i] = addTrait(out[i], "Movable")
				applied = append(applied, domain.AppliedFix{
					Type: domain.FixAddTrait, Line: i + 1,
					Description: fmt.Sprintf("added Movable to struct %s", info.Name),
				})
			}
			if end := methodEnd(lines, start+analysis.MoveLine); end >= 0 {
				deletions = append(deletions, deletion{start + analysis.MoveLine, end})
				applied = append(applied, domain.AppliedFix{
					Type: domain.FixRemoveMethod, Line: start + analysis.MoveLine + 1,
					Description: fmt.Sprintf("removed trivial __moveinit__ from struct %s", info.Name),
				})
			}
		}
	}

	// Delete bottom-up so earlier ranges stay valid.
	sort.Slice(deletions, func(a, b int) bool { return deletions[a].start < deletions[b].start })
	for i := len(deletions) - 1; i >= 0; i-- {
		d := deletions[i]
		out = append(out[:d.start], out[d.end+1:]...)
	}

	return out, applied
}

// methodEnd returns the index of the last body line of the method declared
// at header, or -1 when the method has no body.
func methodEnd(lines []string, header int) int {
	body, start := textscan.Body(lines, header)
	if body == nil {
		return -1
	}
	return start + len(body) - 1
}

// addTrait appends a conformance to a struct header line.
func addTrait(header, trait string) string {
	if idx := strings.LastIndex(header, ")"); idx >= 0 {
		return header[:idx] + ", " + trait + header[idx:]
	}
	if idx := strings.LastIndex(header, ":"); idx >= 0 {
		name := strings.TrimRight(header[:idx], " ")
		return name + "(" + trait + ")" + header[idx:]
	}
	return header
}

// insertDocstrings places a placeholder docstring under every struct or
// function declaration that lacks one.
func insertDocstrings(lines []string, cfg domain.CheckConfig) ([]string, []domain.AppliedFix) {
	cls := textscan.NewClassifier(lines, cfg.CheckDocstringCode)
	var applied []domain.AppliedFix

	type insertion struct {
		after  int
		indent int
	}
	var insertions []insertion

	for i, line := range lines {
		if cls.IsExcluded(i) {
			continue
		}
		if !isDeclarationHeader(line) {
			continue
		}
		if hasDocstring(lines, i) {
			continue
		}
		end := textscan.HeaderEnd(lines, i)
		if end < 0 {
			continue
		}
		insertions = append(insertions, insertion{after: end, indent: textscan.Indentation(line) + 4})
		applied = append(applied, domain.AppliedFix{
			Type: domain.FixInsertDocstring, Line: i + 1,
			Description: "inserted placeholder docstring",
		})
	}

	for i := len(insertions) - 1; i >= 0; i-- {
		ins := insertions[i]
		stub := strings.Repeat(" ", ins.indent) + placeholderDocstring
		lines = append(lines[:ins.after+1], append([]string{stub}, lines[ins.after+1:]...)...)
	}

	return lines, applied
}

var declarationPrefixes = []string{"struct ", "fn ", "def "}

func isDeclarationHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, p := range declarationPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func hasDocstring(lines []string, header int) bool {
	end := textscan.HeaderEnd(lines, header)
	if end < 0 {
		return true // not a block declaration; nothing to document
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
