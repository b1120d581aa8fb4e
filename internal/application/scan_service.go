package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mojolint/mojolint/internal/domain"
	"github.com/mojolint/mojolint/internal/domain/detect"
	"github.com/mojolint/mojolint/internal/domain/textscan"
)

// ScanService orchestrates the scanning pipeline:
// discover files → run detectors per file → score → summarize.
type ScanService struct {
	scanner      domain.SourceScanner
	configLoader domain.ConfigLoader
}

func NewScanService(scanner domain.SourceScanner, configLoader domain.ConfigLoader) *ScanService {
	return &ScanService{scanner: scanner, configLoader: configLoader}
}

// LoadConfig merges .mojolint.yaml (if any) under the given flag overrides.
func (s *ScanService) LoadConfig(root string, override func(*domain.CheckConfig)) (domain.CheckConfig, error) {
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return domain.CheckConfig{}, fmt.Errorf("loading config: %w", err)
	}
	if override != nil {
		override(&cfg)
	}
	return cfg, nil
}

// ScanDirectory checks every Mojo file under root sequentially. A file that
// cannot be read yields a single file-access violation and a zero score; it
// never aborts the rest of the scan.
func (s *ScanService) ScanDirectory(root string, cfg domain.CheckConfig) (*domain.ScanSummary, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	files, err := s.scanner.Discover(absRoot, cfg)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}

	reports := make([]*domain.ComplianceReport, 0, len(files))
	for _, f := range files {
		reports = append(reports, s.CheckFileRelative(absRoot, f, cfg))
	}

	return domain.Summarize(root, reports), nil
}

// CheckFile runs every detector against one file and returns its finalized
// report.
func (s *ScanService) CheckFile(path string, cfg domain.CheckConfig) *domain.ComplianceReport {
	data, err := os.ReadFile(path)
	if err != nil {
		report := domain.NewComplianceReport(path, 0)
		report.AddViolation(domain.Violation{
			File:       path,
			Line:       1,
			Category:   domain.CategoryFileAccess,
			Message:    fmt.Sprintf("cannot read file: %v", err),
			Suggestion: "check that the file exists and is readable",
			Severity:   domain.SeverityError,
		})
		report.Score = 0
		return report
	}

	text := string(data)
	report := domain.NewComplianceReport(path, len(textscan.SplitLines(text)))
	for _, v := range detect.Run(text, path, cfg) {
		report.AddViolation(v)
	}
	report.CalculateScore()
	return report
}

// CheckFileRelative is CheckFile with the report labeled relative to root,
// which keeps rendered output stable across machines.
func (s *ScanService) CheckFileRelative(root, path string, cfg domain.CheckConfig) *domain.ComplianceReport {
	report := s.CheckFile(path, cfg)
	if rel, err := filepath.Rel(root, path); err == nil {
		report.File = rel
		for i := range report.Violations {
			report.Violations[i].File = rel
		}
	}
	return report
}
