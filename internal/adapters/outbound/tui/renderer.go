package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/witcheck/witcheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
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
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	ifaceStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderValidation formats a ValidationResult for the terminal. The final
// verdict line is stable plain text so CI log scrapers can match on it.
func RenderValidation(result *domain.ValidationResult) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("witcheck")
	subtitle := dimStyle.Render("WIT export validation")
	lines := title + "\n" + subtitle + "\n\n" + titleStyle.Render(result.Component)
	if result.World != "" {
		lines += "\n" + dimStyle.Render("world: "+result.World)
	}
	if result.Commit != "" {
		hash := result.Commit
		if len(hash) > 7 {
			hash = hash[:7]
		}
		lines += "\n" + faintStyle.Render("commit "+hash)
	}
	b.WriteString(boxStyle.Render(lines))
	b.WriteString("\n\n")

	// ── Interfaces ──
	if len(result.Interfaces) == 0 {
		b.WriteString("  " + dimStyle.Render("No expected interfaces with enumerated functions.") + "\n")
	}
	for _, diff := range result.Interfaces {
		renderInterface(&b, diff)
	}

	// ── Naming warnings ──
	if len(result.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + titleStyle.Render("Naming") + "\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(&b, "    %s %s.%s %s\n",
				warnStyle.Render("⚠️"),
				dimStyle.Render(w.Interface),
				w.Function,
				faintStyle.Render("suggest: "+w.Suggestion),
			)
		}
	}

	// ── Verdict ──
	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")
	if result.Passed {
		b.WriteString("  " + passStyle.Render("✅ WIT validation PASSED: component exports match specification"))
	} else {
		b.WriteString("  " + failStyle.Render("❌ WIT validation FAILED: component exports don't match specification"))
	}
	b.WriteString("\n")

	return b.String()
}

func renderInterface(b *strings.Builder, diff domain.InterfaceDiff) {
	b.WriteString("  " + ifaceStyle.Render(diff.Name) + "\n")

	if !diff.Found {
		fmt.Fprintf(b, "    %s Interface not found in component exports\n",
			failStyle.Render("❌"))
		b.WriteString("\n")
		return
	}

	if len(diff.Missing) > 0 {
		fmt.Fprintf(b, "    %s Missing functions: %s\n",
			failStyle.Render("❌"),
			strings.Join(diff.Missing, ", "),
		)
	} else {
		fmt.Fprintf(b, "    %s All %d expected functions found\n",
			passStyle.Render("✅"),
			diff.Expected,
		)
	}

	if len(diff.Extra) > 0 {
		fmt.Fprintf(b, "    %s Extra functions: %s\n",
			warnStyle.Render("⚠️"),
			dimStyle.Render(strings.Join(diff.Extra, ", ")),
		)
	}

	b.WriteString("\n")
}
