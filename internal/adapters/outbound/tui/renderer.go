package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mojolint/mojolint/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(64)

	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle        = lipgloss.NewStyle().Foreground(dim)
	faintStyle      = lipgloss.NewStyle().Foreground(faint)
	passStyle       = lipgloss.NewStyle().Foreground(success)
	errorTagStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle    = lipgloss.NewStyle().Foreground(warning).Bold(true)
	suggestTagStyle = lipgloss.NewStyle().Foreground(info)
	observeTagStyle = lipgloss.NewStyle().Foreground(faint)
	separatorLine   = faintStyle.Render(strings.Repeat("─", 60))
)

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 90:
		return success
	case score >= 70:
		return warning
	default:
		return danger
	}
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityError:
		return errorTagStyle.Render("ERROR")
	case domain.SeverityWarning:
		return warnTagStyle.Render("WARN")
	case domain.SeveritySuggestion:
		return suggestTagStyle.Render("SUGGEST")
	default:
		return observeTagStyle.Render("NOTE")
	}
}

// RenderSummary renders the aggregate result of a directory scan: a summary
// box followed by one detail block per file that has violations.
// Observations are hidden unless showObservations is set.
func RenderSummary(s *domain.ScanSummary, showObservations bool) string {
	var b strings.Builder

	title := headerStyle.Render("mojolint")
	subtitle := dimStyle.Render("Mojo style compliance")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(s.AverageScore)).
		Render(fmt.Sprintf("%.1f / 100", s.AverageScore))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Summary") + "\n")
	b.WriteString(fmt.Sprintf("  %s %d\n", dimStyle.Render("files scanned:"), s.Files))
	b.WriteString(fmt.Sprintf("  %s %d\n", dimStyle.Render("violations:"), s.Violations))
	b.WriteString(fmt.Sprintf("  %s %d errors, %d warnings, %d suggestions, %d observations\n",
		dimStyle.Render("by severity:"), s.Errors, s.Warnings, s.Suggestions, s.Observations))
	if s.CommitHash != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", dimStyle.Render("commit:"), shortHash(s.CommitHash)))
	}
	b.WriteString("\n  " + separatorLine + "\n\n")

	clean := true
	for _, r := range s.Reports {
		block := RenderReport(r, showObservations)
		if block == "" {
			continue
		}
		clean = false
		b.WriteString(block)
		b.WriteString("\n")
	}
	if clean {
		b.WriteString("  " + passStyle.Render("No violations found.") + "\n")
	}

	return b.String()
}

// RenderReport renders one file's detail block, or "" when the file has
// nothing worth showing.
func RenderReport(r *domain.ComplianceReport, showObservations bool) string {
	shown := make([]domain.Violation, 0, len(r.Violations))
	for _, v := range r.Violations {
		if v.Severity == domain.SeverityObservation && !showObservations {
			continue
		}
		shown = append(shown, v)
	}
	if len(shown) == 0 {
		return ""
	}

	var b strings.Builder
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(r.Score)).
		Render(fmt.Sprintf("%.1f", r.Score))
	b.WriteString(fmt.Sprintf("  %s  %s\n", titleStyle.Render(r.File), scoreStyled))

	for _, v := range shown {
		b.WriteString(fmt.Sprintf("    %s %s %s\n",
			severityTag(v.Severity),
			dimStyle.Render(fmt.Sprintf("line %d", v.Line)),
			v.Message))
		if v.Suggestion != "" {
			b.WriteString("      " + faintStyle.Render("→ "+v.Suggestion) + "\n")
		}
	}

	return b.String()
}

// RenderHistory renders persisted scan entries, newest last.
func RenderHistory(entries []domain.ScanEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("No scan history yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Scan history") + "\n")
	for _, e := range entries {
		hash := ""
		if e.CommitHash != "" {
			hash = " " + faintStyle.Render(shortHash(e.CommitHash))
		}
		b.WriteString(fmt.Sprintf("  %s  %.1f  %s%s\n",
			dimStyle.Render(e.Timestamp),
			e.AverageScore,
			dimStyle.Render(fmt.Sprintf("%d files, %d violations", e.Files, e.Violations)),
			hash))
	}
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
