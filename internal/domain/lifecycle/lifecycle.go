// Package lifecycle classifies a struct's copy and move constructors as
// trivial or custom and checks that the declared Copyable/Movable
// conformances match what the methods actually do.
package lifecycle

import (
	"regexp"
	"strings"

	"github.com/mojolint/mojolint/internal/domain/textscan"
)

const (
	copyMethod = "__copyinit__"
	moveMethod = "__moveinit__"
)

// StructInfo records what a struct header declares. Derived once per
// declaration and read-only afterwards.
type StructInfo struct {
	Name         string
	HasCopyTrait bool
	HasMoveTrait bool
}

var structHeader = regexp.MustCompile(`^\s*struct\s+([A-Za-z_][A-Za-z0-9_]*)`)

// ParseStructHeader extracts StructInfo from a struct declaration line.
// Conformances are matched anywhere on the header line, which also covers
// multi-trait lists like `struct Buf(Copyable, Movable, Sized):`.
func ParseStructHeader(line string) (StructInfo, bool) {
	m := structHeader.FindStringSubmatch(line)
	if m == nil {
		return StructInfo{}, false
	}
	return StructInfo{
		Name:         m[1],
		HasCopyTrait: strings.Contains(line, "Copyable"),
		HasMoveTrait: strings.Contains(line, "Movable"),
	}, true
}

// Analysis records what the struct body actually implements. CopyLine and
// MoveLine are offsets into the struct body (0-based), -1 when the method is
// absent. Computed once, never mutated.
type Analysis struct {
	TrivialCopy     bool
	TrivialMove     bool
	NeedsCustomCopy bool
	NeedsCustomMove bool
	CopyLine        int
	MoveLine        int
}

// Trivial body statements: a mechanical per-field copy, or a per-field copy
// with the ^ transfer sigil for moves. Anything else makes the whole method
// custom.
var (
	copyStmt = regexp.MustCompile(`^self\.[A-Za-z_][A-Za-z0-9_]*\s*=\s*[A-Za-z_][A-Za-z0-9_]*\.[A-Za-z_][A-Za-z0-9_]*$`)
	moveStmt = regexp.MustCompile(`^self\.[A-Za-z_][A-Za-z0-9_]*\s*=\s*[A-Za-z_][A-Za-z0-9_]*\.[A-Za-z_][A-Za-z0-9_]*\^$`)
)

// Analyze inspects a struct body for copy and move constructors and
// classifies each as trivial or custom. Field order does not matter; any
// extra statement (validation, logging, partial copy) does.
func Analyze(body []string) Analysis {
	a := Analysis{CopyLine: -1, MoveLine: -1}

	for i, line := range body {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "fn "+copyMethod):
			a.CopyLine = i
			if trivialBody(body, i, copyStmt) {
				a.TrivialCopy = true
			} else {
				a.NeedsCustomCopy = true
			}
		case strings.HasPrefix(trimmed, "fn "+moveMethod):
			a.MoveLine = i
			if trivialBody(body, i, moveStmt) {
				a.TrivialMove = true
			} else {
				a.NeedsCustomMove = true
			}
		}
	}

	return a
}

// trivialBody extracts the method body starting at header and reports
// whether every statement in it matches the given per-field pattern.
func trivialBody(body []string, header int, stmt *regexp.Regexp) bool {
	method, _ := textscan.Body(body, header)
	if method == nil {
		return false
	}

	matched := 0
	for _, line := range method {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !stmt.MatchString(trimmed) {
			return false
		}
		matched++
	}
	return matched > 0
}
