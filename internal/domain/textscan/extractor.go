package textscan

import "strings"

// Indentation returns the number of leading whitespace characters of a line,
// counting a tab as one character. Mojo style is spaces-only, so this is a
// plain prefix count.
func Indentation(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// IsComment reports whether the line is a # comment (possibly indented).
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// HeaderEnd returns the index of the line that terminates the declaration
// header starting at header: brackets and parentheses opened on the header
// may span multiple lines, so the header ends at the first line where all
// groups are balanced and a block-opening colon appears. Returns -1 if no
// such line exists.
func HeaderEnd(lines []string, header int) int {
	depth := 0
	for i := header; i < len(lines); i++ {
		for _, r := range lines[i] {
			switch r {
			case '(', '[':
				depth++
			case ')', ']':
				depth--
			}
		}
		if depth <= 0 && strings.HasSuffix(strings.TrimRight(lines[i], " \t"), ":") {
			return i
		}
	}
	return -1
}

// Body extracts the indented block belonging to the declaration whose header
// starts at header. The header line's own indentation is the baseline: the
// block is every following line indented strictly deeper, ending at the
// first non-blank, non-comment line at or above the baseline. It returns the
// block's lines and the index of its first line, or (nil, -1) when the
// declaration has no body.
func Body(lines []string, header int) ([]string, int) {
	end := HeaderEnd(lines, header)
	if end < 0 || end+1 >= len(lines) {
		return nil, -1
	}

	baseline := Indentation(lines[header])
	start := end + 1

	var body []string
	for i := start; i < len(lines); i++ {
		if isBlank(lines[i]) || IsComment(lines[i]) {
			body = append(body, lines[i])
			continue
		}
		if Indentation(lines[i]) <= baseline {
			break
		}
		body = append(body, lines[i])
	}

	// Trim trailing blank and comment lines that belong to whatever follows.
	for len(body) > 0 && (isBlank(body[len(body)-1]) || IsComment(body[len(body)-1])) {
		body = body[:len(body)-1]
	}
	if len(body) == 0 {
		return nil, -1
	}
	return body, start
}
