package domain

// CheckConfig holds the checker settings shared by detectors, the scanner and
// the fixer. It is built once per invocation from flags and .mojolint.yaml
// and passed by value; nothing mutates it after construction.
type CheckConfig struct {
	ShowObservations   bool     `yaml:"show_observations"    json:"show_observations"`
	CheckDocstringCode bool     `yaml:"check_docstring_code" json:"check_docstring_code"`
	DisableBackup      bool     `yaml:"disable_backup"       json:"disable_backup"`
	KeepBackups        bool     `yaml:"keep_backups"         json:"keep_backups"`
	AutoCleanup        bool     `yaml:"auto_cleanup"         json:"auto_cleanup"`
	RetentionDays      int      `yaml:"retention_days"       json:"retention_days"`
	ExcludeDirs        []string `yaml:"exclude_dirs"         json:"exclude_dirs,omitempty"`
}

// DefaultConfig returns the settings used when no .mojolint.yaml is present.
func DefaultConfig() CheckConfig {
	return CheckConfig{
		RetentionDays: 7,
		ExcludeDirs: []string{
			".git", ".hg", "__pycache__", "node_modules",
			".pixi", ".magic", "build", "venv", ".venv",
		},
	}
}

// ExcludedDir reports whether a directory name is skipped during walking.
func (c CheckConfig) ExcludedDir(name string) bool {
	for _, d := range c.ExcludeDirs {
		if d == name {
			return true
		}
	}
	return false
}
