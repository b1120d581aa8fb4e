package textscan_test

import (
	"testing"

	"github.com/mojolint/mojolint/internal/domain/textscan"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_InDocstring(t *testing.T) {
	lines := []string{
		`fn add(a: Int, b: Int) -> Int:`,
		`    """Adds two integers.`,
		``,
		`    Returns:`,
		`        The sum.`,
		`    """`,
		`    return a + b`,
	}
	c := textscan.NewClassifier(lines, false)

	assert.False(t, c.InDocstring(0))
	assert.True(t, c.InDocstring(1), "opening line is inside the block")
	assert.True(t, c.InDocstring(3))
	assert.True(t, c.InDocstring(4))
	assert.False(t, c.InDocstring(5), "closing delimiter ends the block")
	assert.False(t, c.InDocstring(6))
}

func TestClassifier_DocstringExclusionDisabled(t *testing.T) {
	lines := []string{
		`fn demo():`,
		`    """Example.`,
		`    let x = 1`,
		`    """`,
	}

	strict := textscan.NewClassifier(lines, true)
	assert.False(t, strict.IsExcluded(2), "docstring code checking keeps docstring lines visible")

	lenient := textscan.NewClassifier(lines, false)
	assert.True(t, lenient.IsExcluded(2))
}

func TestClassifier_VariableStringAlwaysExcluded(t *testing.T) {
	lines := []string{
		`var sample = """`,
		`from .broken import thing`,
		`let legacy = 1`,
		`"""`,
		`let real = 1`,
	}

	// Even with docstring checking enabled, assigned string literals are
	// never treated as statements.
	c := textscan.NewClassifier(lines, true)
	assert.True(t, c.IsExcluded(1))
	assert.True(t, c.IsExcluded(2))
	assert.False(t, c.IsExcluded(4))
}

func TestClassifier_SingleLineAssignmentNotExcluding(t *testing.T) {
	lines := []string{
		`var msg = """hello"""`,
		`let x = 1`,
	}
	c := textscan.NewClassifier(lines, true)
	assert.False(t, c.InVariableString(1))
}

func TestClassifier_UnterminatedLiteral(t *testing.T) {
	lines := []string{
		`var blob = """`,
		`anything goes`,
		`still inside`,
	}
	c := textscan.NewClassifier(lines, false)
	assert.True(t, c.InVariableString(1))
	assert.True(t, c.InVariableString(2))
}

func TestClassifier_OutOfRange(t *testing.T) {
	c := textscan.NewClassifier([]string{`var x = 1`}, false)
	assert.False(t, c.IsExcluded(-1))
	assert.False(t, c.IsExcluded(5))
}

func TestSplitLines_WindowsEndings(t *testing.T) {
	lines := textscan.SplitLines("a\r\nb\r\nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
