package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mojolint/mojolint/internal/adapters/outbound/config"
	"github.com/mojolint/mojolint/internal/adapters/outbound/scanner"
	"github.com/mojolint/mojolint/internal/application"
	"github.com/mojolint/mojolint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanService() *application.ScanService {
	return application.NewScanService(scanner.New(), config.New())
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

const cleanMojo = `fn add(a: Int, b: Int) -> Int:
    """Adds two integers and returns their sum."""
    return a + b
`

func TestScanDirectory_CleanFileScoresFull(t *testing.T) {
	root := writeTree(t, map[string]string{"math.mojo": cleanMojo})

	summary, err := newScanService().ScanDirectory(root, cfg())
	require.NoError(t, err)

	require.Len(t, summary.Reports, 1)
	assert.Equal(t, 100.0, summary.Reports[0].Score)
	assert.Equal(t, 100.0, summary.AverageScore)
	assert.Zero(t, summary.Violations)
}

func TestScanDirectory_ReportsRelativePaths(t *testing.T) {
	root := writeTree(t, map[string]string{
		filepath.Join("pkg", "util.mojo"): cleanMojo,
	})

	summary, err := newScanService().ScanDirectory(root, cfg())
	require.NoError(t, err)

	require.Len(t, summary.Reports, 1)
	assert.Equal(t, filepath.Join("pkg", "util.mojo"), summary.Reports[0].File)
}

func TestScanDirectory_ViolationsLowerAverage(t *testing.T) {
	root := writeTree(t, map[string]string{
		"clean.mojo": cleanMojo,
		"bad.mojo":   "fn run():\n    let x = 1\n",
	})

	summary, err := newScanService().ScanDirectory(root, cfg())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Files)
	assert.Greater(t, summary.Errors, 0)
	assert.Less(t, summary.AverageScore, 100.0)
}

func TestScanDirectory_EmptyTree(t *testing.T) {
	summary, err := newScanService().ScanDirectory(t.TempDir(), cfg())
	require.NoError(t, err)

	assert.Zero(t, summary.Files)
	assert.Equal(t, 100.0, summary.AverageScore)
}

func TestScanDirectory_SkipsExcludedDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep.mojo": cleanMojo,
		filepath.Join("__pycache__", "skip.mojo"): "let broken\n",
	})

	summary, err := newScanService().ScanDirectory(root, cfg())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Files)
}

func TestCheckFile_UnreadableFileIsIsolated(t *testing.T) {
	svc := newScanService()
	report := svc.CheckFile(filepath.Join(t.TempDir(), "ghost.mojo"), cfg())

	require.Len(t, report.Violations, 1)
	assert.Equal(t, domain.CategoryFileAccess, report.Violations[0].Category)
	assert.Equal(t, domain.SeverityError, report.Violations[0].Severity)
	assert.Equal(t, 0.0, report.Score)
}

func TestScanDirectory_UnreadableFileDoesNotAbortScan(t *testing.T) {
	root := writeTree(t, map[string]string{
		"ok.mojo":     cleanMojo,
		"locked.mojo": cleanMojo,
	})
	require.NoError(t, os.Chmod(filepath.Join(root, "locked.mojo"), 0000))
	t.Cleanup(func() { os.Chmod(filepath.Join(root, "locked.mojo"), 0644) })
	if os.Getuid() == 0 {
		t.Skip("root can read anything; permission failure cannot be simulated")
	}

	summary, err := newScanService().ScanDirectory(root, cfg())
	require.NoError(t, err)

	require.Equal(t, 2, summary.Files)
	assert.Equal(t, 1, summary.Errors)
	assert.InDelta(t, 50.0, summary.AverageScore, 0.001)
}

func TestLoadConfig_OverridesApplyOnTopOfDefaults(t *testing.T) {
	svc := newScanService()
	got, err := svc.LoadConfig(t.TempDir(), func(c *domain.CheckConfig) {
		c.ShowObservations = true
	})
	require.NoError(t, err)

	assert.True(t, got.ShowObservations)
	assert.Equal(t, domain.DefaultConfig().RetentionDays, got.RetentionDays)
}
