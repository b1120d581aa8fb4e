package history_test

import (
	"testing"

	"github.com/mojolint/mojolint/internal/adapters/outbound/history"
	"github.com/mojolint/mojolint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.ScanEntry{
		Timestamp:    "2026-08-30T12:00:00Z",
		Files:        4,
		Violations:   7,
		AverageScore: 82.5,
	}
	require.NoError(t, h.Save(dir, entry))
	require.NoError(t, h.Save(dir, domain.ScanEntry{Timestamp: "2026-08-31T12:00:00Z", AverageScore: 90}))

	entries, err := h.Load(dir)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, entry, entries[0])
	assert.Equal(t, 90.0, entries[1].AverageScore)
}

func TestLoad_NoHistory(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}
