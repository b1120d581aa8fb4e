package detect_test

import (
	"strings"
	"testing"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/detect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_OwnedPointerNeverFreed(t *testing.T) {
	text := strings.Join([]string{
		`fn consume(owned ptr: UnsafePointer[Float32]):`,
		`    var v = ptr[0]`,
		`    print(v)`,
	}, "\n")

	got := detect.Memory(text, "m.mojo", cfg())

	require.Len(t, got, 1)
	assert.Equal(t, domain.SeverityWarning, got[0].Severity)
	assert.Equal(t, domain.CategoryMemoryManagement, got[0].Category)
	assert.Contains(t, got[0].Message, "ptr")
}

func TestMemory_OwnedPointerFreedClean(t *testing.T) {
	text := strings.Join([]string{
		`fn consume(owned ptr: UnsafePointer[Float32]):`,
		`    print(ptr[0])`,
		`    ptr.free()`,
	}, "\n")

	assert.Empty(t, detect.Memory(text, "m.mojo", cfg()))
}

// The heuristic accepts any free call in the body, even one applied to a
// different pointer. That imprecision is part of the contract.
func TestMemory_AnyFreeCallSatisfiesHeuristic(t *testing.T) {
	text := strings.Join([]string{
		`fn consume(owned ptr: UnsafePointer[Float32], owned other: UnsafePointer[Float32]):`,
		`    other.free()`,
	}, "\n")

	assert.Empty(t, detect.Memory(text, "m.mojo", cfg()))
}

func TestMemory_BorrowedNeverFlagged(t *testing.T) {
	tests := []string{
		`fn read_only(borrowed ptr: UnsafePointer[Float32]):`,
		`fn mutate(mut ptr: UnsafePointer[Float32]):`,
		`fn observe(read ptr: UnsafePointer[Float32]):`,
	}

	for _, header := range tests {
		text := header + "\n    print(ptr[0])\n"
		assert.Empty(t, detect.Memory(text, "m.mojo", cfg()), header)
	}
}

func TestMemory_KernelFunctionsExempt(t *testing.T) {
	text := strings.Join([]string{
		`fn kernel(owned ptr: UnsafePointer[Float32]):`,
		`    var i = thread_idx.x`,
		`    ptr[i] = 0`,
	}, "\n")

	assert.Empty(t, detect.Memory(text, "k.mojo", cfg()))
}

func TestMemory_MultiLineHeader(t *testing.T) {
	text := strings.Join([]string{
		`fn consume(`,
		`    owned ptr: UnsafePointer[Float32],`,
		`):`,
		`    print(ptr[0])`,
	}, "\n")

	got := detect.Memory(text, "m.mojo", cfg())
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Line)
}
