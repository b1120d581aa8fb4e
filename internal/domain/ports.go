package domain

// SourceScanner discovers Mojo source files under a root directory.
type SourceScanner interface {
	Discover(root string, cfg CheckConfig) ([]string, error)
}

// BackupStore creates and restores sibling backup copies of source files.
type BackupStore interface {
	Create(path string) (backupPath string, err error)
	Restore(path string) error
	Remove(path string) error
	// Sweep deletes backups under root older than retentionDays and returns
	// the paths it removed.
	Sweep(root string, retentionDays int) ([]string, error)
}

// BuildValidator checks that a rewritten file is still accepted by the Mojo
// toolchain. Implementations shell out; they never execute the scanned code.
type BuildValidator interface {
	Validate(path string) error
}

// ConfigLoader reads project configuration, falling back to defaults when no
// config file exists.
type ConfigLoader interface {
	Load(root string) (CheckConfig, error)
}

// GitInfo exposes version-control metadata for report headers.
type GitInfo interface {
	IsGitRepo(root string) bool
	CommitHash(root string) (string, error)
}

// ScanEntry is one persisted line of scan history.
type ScanEntry struct {
	Timestamp    string  `json:"timestamp"`
	CommitHash   string  `json:"commit_hash,omitempty"`
	Files        int     `json:"files"`
	Violations   int     `json:"violations"`
	AverageScore float64 `json:"average_score"`
}

// ScanHistory persists summary results across runs.
type ScanHistory interface {
	Save(root string, entry ScanEntry) error
	Load(root string) ([]ScanEntry, error)
}
