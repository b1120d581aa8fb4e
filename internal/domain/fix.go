package domain

// FixOptions controls the fix pipeline for a single file.
type FixOptions struct {
	// EnableAutoFix applies the rewrites; without it the fixer only plans.
	EnableAutoFix bool
}

// AppliedFix describes one textual rewrite the fixer performed or planned.
type AppliedFix struct {
	Type        string `json:"type"`
	Line        int    `json:"line,omitempty"`
	Description string `json:"description"`
}

// Fix types, closed set.
const (
	FixRelativeImport  = "relative_import"
	FixLegacyBinding   = "legacy_binding"
	FixInsertDocstring = "insert_docstring"
	FixAddTrait        = "add_trait"
	FixRemoveMethod    = "remove_trivial_method"
)

// FixResult reports the outcome of the backup → transform → validate
// pipeline for one file.
type FixResult struct {
	File       string       `json:"file"`
	Applied    []AppliedFix `json:"applied"`
	BackupPath string       `json:"backup_path,omitempty"`
	Validated  bool         `json:"validated"`
	RolledBack bool         `json:"rolled_back"`
}
