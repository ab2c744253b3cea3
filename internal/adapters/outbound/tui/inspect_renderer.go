package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/witcheck/witcheck/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	kindStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderInspectSummary renders a batch inspection as a styled TUI string,
// ending with the "N/M components valid" line the build logs key on.
func RenderInspectSummary(summary *domain.InspectSummary) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + sectionHeaderStyle.Render("Component inspection") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, report := range summary.Reports {
		renderArtifact(&b, report)
	}

	b.WriteString("  " + separatorLine + "\n\n")
	verdict := fmt.Sprintf("%d/%d components valid", summary.Valid, summary.Total)
	if summary.AllValid {
		b.WriteString("  " + passStyle.Render("✅ "+verdict))
	} else {
		b.WriteString("  " + failStyle.Render("❌ "+verdict))
	}
	b.WriteString("\n")

	return b.String()
}

func renderArtifact(b *strings.Builder, report domain.InspectReport) {
	a := report.Artifact

	icon := failStyle.Render("✗")
	if a.Valid {
		icon = passStyle.Render("✓")
	}
	fmt.Fprintf(b, "  %s %s  %s %s\n",
		icon,
		titleStyle.Render(a.Path),
		kindStyle.Render(string(a.Kind)),
		dimStyle.Render(fmt.Sprintf("%d bytes", a.SizeBytes)),
	)

	if a.Detail != "" {
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(a.Detail))
	}

	switch {
	case report.WitAvailable:
		fmt.Fprintf(b, "      %s\n", dimStyle.Render(fmt.Sprintf(
			"interfaces: %d, exports: %d, imports: %d",
			report.Interfaces, report.Exports, report.Imports,
		)))
	case report.Note != "":
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(report.Note))
	}

	b.WriteString("\n")
}
