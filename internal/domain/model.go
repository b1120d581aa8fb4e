package domain

import "time"

// Severity classifies how strongly a violation counts against compliance.
type Severity string

const (
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeveritySuggestion  Severity = "suggestion"
	SeverityObservation Severity = "observation"
)

// Category identifies the detector family that produced a violation.
type Category string

const (
	CategoryImportPattern    Category = "import_pattern"
	CategoryStructPattern    Category = "struct_pattern"
	CategoryVariablePattern  Category = "variable_pattern"
	CategoryGPUPattern       Category = "gpu_pattern"
	CategoryDocstring        Category = "docstring"
	CategoryErrorHandling    Category = "error_handling"
	CategoryPerformance      Category = "performance"
	CategoryMemoryManagement Category = "memory_management"
	CategoryFileAccess       Category = "file_access"
)

// Violation represents a single detected deviation from the Mojo style
// standard. It is a value: created by a detector, never mutated afterwards.
type Violation struct {
	File       string   `json:"file"`
	Line       int      `json:"line"` // 1-based
	Category   Category `json:"category"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Severity   Severity `json:"severity"`
}

// ComplianceReport aggregates the violations found in one scanned file.
type ComplianceReport struct {
	File       string      `json:"file"`
	TotalLines int         `json:"total_lines"`
	Violations []Violation `json:"violations"`
	Score      float64     `json:"score"`
	Timestamp  time.Time   `json:"timestamp"`
}

func NewComplianceReport(file string, totalLines int) *ComplianceReport {
	return &ComplianceReport{
		File:       file,
		TotalLines: totalLines,
		Score:      100.0,
		Timestamp:  time.Now(),
	}
}

func (r *ComplianceReport) AddViolation(v Violation) {
	r.Violations = append(r.Violations, v)
}

// CalculateScore recomputes the compliance score from the recorded
// violations: 100 minus 10 per error and 5 per warning, clamped to [0, 100]
// after the full subtraction. Suggestions and observations never affect the
// score. A file with nothing in it has nothing to violate and keeps 100.
func (r *ComplianceReport) CalculateScore() float64 {
	errors, warnings := 0, 0
	for _, v := range r.Violations {
		switch v.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	score := 100.0 - 10.0*float64(errors) - 5.0*float64(warnings)
	if score < 0 {
		score = 0
	}
	r.Score = score
	return score
}

// CountBySeverity returns how many recorded violations carry the given
// severity.
func (r *ComplianceReport) CountBySeverity(s Severity) int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == s {
			n++
		}
	}
	return n
}

// ScanSummary is the aggregate result of scanning a directory tree.
type ScanSummary struct {
	Root         string              `json:"root"`
	Reports      []*ComplianceReport `json:"reports"`
	Files        int                 `json:"files"`
	Violations   int                 `json:"violations"`
	Errors       int                 `json:"errors"`
	Warnings     int                 `json:"warnings"`
	Suggestions  int                 `json:"suggestions"`
	Observations int                 `json:"observations"`
	AverageScore float64             `json:"average_score"`
	Timestamp    time.Time           `json:"timestamp"`
	CommitHash   string              `json:"commit_hash,omitempty"`
}

// Summarize builds a ScanSummary from finalized per-file reports.
func Summarize(root string, reports []*ComplianceReport) *ScanSummary {
	s := &ScanSummary{
		Root:      root,
		Reports:   reports,
		Files:     len(reports),
		Timestamp: time.Now(),
	}

	total := 0.0
	for _, r := range reports {
		s.Violations += len(r.Violations)
		s.Errors += r.CountBySeverity(SeverityError)
		s.Warnings += r.CountBySeverity(SeverityWarning)
		s.Suggestions += r.CountBySeverity(SeveritySuggestion)
		s.Observations += r.CountBySeverity(SeverityObservation)
		total += r.Score
	}

	if len(reports) > 0 {
		s.AverageScore = total / float64(len(reports))
	} else {
		s.AverageScore = 100.0
	}

	return s
}
