package detect_test

import (
	"strings"
	"testing"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/detect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructs_MissingDocstring(t *testing.T) {
	text := strings.Join([]string{
		`struct Point:`,
		`    var x: Int`,
	}, "\n")

	got := detect.Structs(text, "p.mojo", cfg())

	require.Len(t, got, 1)
	assert.Equal(t, domain.SeverityError, got[0].Severity)
	assert.Contains(t, got[0].Message, "Point")
}

func TestStructs_DocstringPresent(t *testing.T) {
	text := strings.Join([]string{
		`struct Point:`,
		`    """A 2D point in screen space."""`,
		`    var x: Int`,
	}, "\n")

	assert.Empty(t, detect.Structs(text, "p.mojo", cfg()))
}

// A struct with neither trait and only a trivial copy constructor gets
// exactly one suggestion recommending the Copyable conformance.
func TestStructs_TrivialCopyWithoutTrait(t *testing.T) {
	text := strings.Join([]string{
		`struct Point:`,
		`    """A 2D point."""`,
		`    var x: Int`,
		`    fn __copyinit__(out self, existing: Self):`,
		`        self.x = existing.x`,
	}, "\n")

	got := detect.Structs(text, "p.mojo", cfg())

	require.Len(t, got, 1)
	assert.Equal(t, domain.SeveritySuggestion, got[0].Severity)
	assert.Contains(t, got[0].Suggestion, "add Copyable")
	assert.Equal(t, 4, got[0].Line)
}

// Both traits plus both trivial methods: two removal suggestions and no
// trait-removal advice.
func TestStructs_BothTraitsBothTrivial(t *testing.T) {
	text := strings.Join([]string{
		`struct Pair(Copyable, Movable):`,
		`    """Two ints."""`,
		`    var a: Int`,
		`    fn __copyinit__(out self, existing: Self):`,
		`        self.a = existing.a`,
		`    fn __moveinit__(out self, owned existing: Self):`,
		`        self.a = existing.a^`,
	}, "\n")

	got := detect.Structs(text, "pair.mojo", cfg())

	require.Len(t, got, 2)
	for _, v := range got {
		assert.Equal(t, domain.SeveritySuggestion, v.Severity)
		assert.NotContains(t, v.Suggestion, "remove Copyable")
		assert.NotContains(t, v.Suggestion, "remove Movable")
	}
}

func TestStructs_CustomCopyNotFlagged(t *testing.T) {
	text := strings.Join([]string{
		`struct Res(Copyable):`,
		`    """A counted resource."""`,
		`    var refs: Int`,
		`    fn __copyinit__(out self, existing: Self):`,
		`        self.refs = existing.refs`,
		`        self.register()`,
	}, "\n")

	assert.Empty(t, detect.Structs(text, "res.mojo", cfg()))
}

func TestStructs_NonPascalName(t *testing.T) {
	text := strings.Join([]string{
		`struct device_buffer:`,
		`    """Owns device memory."""`,
		`    var ptr: Int`,
	}, "\n")

	got := detect.Structs(text, "d.mojo", cfg())

	require.Len(t, got, 1)
	assert.Equal(t, domain.SeverityWarning, got[0].Severity)
	assert.Contains(t, got[0].Message, "PascalCase")
}

func TestStructs_OverlongName(t *testing.T) {
	text := strings.Join([]string{
		`struct VeryLongAndDeeplyConfusingBufferManagerThing:`,
		`    """Too many words."""`,
		`    var x: Int`,
	}, "\n")

	got := detect.Structs(text, "v.mojo", cfg())

	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "words")
}

func TestStructs_HeaderInsideDocstringIgnored(t *testing.T) {
	text := strings.Join([]string{
		`fn demo():`,
		`    """Example:`,
		`    struct Sample:`,
		`        var x: Int`,
		`    """`,
		`    pass`,
	}, "\n")

	assert.Empty(t, detect.Structs(text, "demo.mojo", cfg()))
}
