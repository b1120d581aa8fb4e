package textscan

import "strings"

// Delimiter is the triple-quote that opens and closes both docstrings and
// multi-line string literals in Mojo source.
const Delimiter = `"""`

// Classifier decides, per physical line, whether content is inside a
// docstring or a triple-quoted string literal and must therefore be ignored
// by the detectors. It is deliberately conservative: over-excluding a line is
// acceptable, treating docstring prose as code is not.
type Classifier struct {
	lines              []string
	checkDocstringCode bool
}

// NewClassifier builds a classifier over the given lines. When
// checkDocstringCode is true, docstring contents are NOT excluded, so code
// samples embedded in docstrings get checked like regular source.
func NewClassifier(lines []string, checkDocstringCode bool) *Classifier {
	return &Classifier{lines: lines, checkDocstringCode: checkDocstringCode}
}

// IsExcluded reports whether line i should be skipped by every detector.
func (c *Classifier) IsExcluded(i int) bool {
	if c.InVariableString(i) {
		return true
	}
	if !c.checkDocstringCode && c.InDocstring(i) {
		return true
	}
	return false
}

// InVariableString reports whether line i lies strictly inside a
// triple-quoted string literal assigned to a variable, as in:
//
//	var example = """
//	...sample code, not real statements...
//	"""
//
// This exclusion is always active regardless of configuration.
func (c *Classifier) InVariableString(i int) bool {
	if i < 0 || i >= len(c.lines) {
		return false
	}

	// Nearest prior line that assigns a triple-quoted literal.
	opener := -1
	for j := i - 1; j >= 0; j-- {
		eq := strings.Index(c.lines[j], "=")
		if eq < 0 {
			continue
		}
		rest := c.lines[j][eq+1:]
		if strings.Contains(rest, Delimiter) {
			// Opened and closed on the same line: no multi-line span.
			if strings.Count(rest, Delimiter) >= 2 {
				return false
			}
			opener = j
			break
		}
	}
	if opener < 0 {
		return false
	}

	// Find the matching closer.
	for k := opener + 1; k < len(c.lines); k++ {
		if strings.Contains(c.lines[k], Delimiter) {
			return i > opener && i < k
		}
	}

	// Unterminated literal: everything after the opener is inside it.
	return i > opener
}

// InDocstring reports whether line i is inside an unterminated documentation
// block: an odd number of triple-quote delimiters from the start of the file
// through line i means the block opened above is still open.
func (c *Classifier) InDocstring(i int) bool {
	if i < 0 || i >= len(c.lines) {
		return false
	}

	count := 0
	for j := 0; j <= i; j++ {
		count += strings.Count(c.lines[j], Delimiter)
	}
	return count%2 == 1
}

// SplitLines splits file text into physical lines without dropping a final
// unterminated line.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
