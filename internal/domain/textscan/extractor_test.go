package textscan_test

import (
	"testing"

	"github.com/mojolint/mojolint/internal/domain/textscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderEnd_SingleLine(t *testing.T) {
	lines := []string{
		`struct Point(Copyable, Movable):`,
		`    var x: Int`,
	}
	assert.Equal(t, 0, textscan.HeaderEnd(lines, 0))
}

func TestHeaderEnd_MultiLineSignature(t *testing.T) {
	lines := []string{
		`fn launch(`,
		`    ctx: DeviceContext,`,
		`    grid: Int,`,
		`) raises:`,
		`    pass`,
	}
	assert.Equal(t, 3, textscan.HeaderEnd(lines, 0))
}

func TestHeaderEnd_NoColon(t *testing.T) {
	lines := []string{`var x = foo(`, `    1,`, `)`}
	assert.Equal(t, -1, textscan.HeaderEnd(lines, 0))
}

func TestBody_StructWithFollowingCode(t *testing.T) {
	lines := []string{
		`struct Point:`,
		`    var x: Int`,
		`    var y: Int`,
		``,
		`    fn __init__(out self):`,
		`        self.x = 0`,
		``,
		`fn unrelated():`,
		`    pass`,
	}
	body, start := textscan.Body(lines, 0)
	require.Equal(t, 1, start)
	require.Len(t, body, 5, "trailing blank line is not part of the body")
	assert.Equal(t, `        self.x = 0`, body[4])
}

func TestBody_MethodUsesOwnIndentBaseline(t *testing.T) {
	lines := []string{
		`struct Point:`,
		`    fn __copyinit__(out self, existing: Self):`,
		`        self.x = existing.x`,
		`        self.y = existing.y`,
		`    fn other(self):`,
		`        pass`,
	}
	body, start := textscan.Body(lines, 1)
	require.Equal(t, 2, start)
	assert.Equal(t, []string{
		`        self.x = existing.x`,
		`        self.y = existing.y`,
	}, body)
}

func TestBody_EmptyBody(t *testing.T) {
	lines := []string{
		`struct Empty:`,
		`struct Next:`,
		`    var x: Int`,
	}
	body, start := textscan.Body(lines, 0)
	assert.Nil(t, body)
	assert.Equal(t, -1, start)
}

func TestBody_CommentOnlyTailTrimmed(t *testing.T) {
	lines := []string{
		`fn f():`,
		`    pass`,
		`# trailing file comment`,
	}
	body, _ := textscan.Body(lines, 0)
	assert.Equal(t, []string{`    pass`}, body)
}

func TestIndentation(t *testing.T) {
	assert.Equal(t, 0, textscan.Indentation("fn f():"))
	assert.Equal(t, 4, textscan.Indentation("    pass"))
	assert.Equal(t, 0, textscan.Indentation(""))
}
