package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/county-estate/scaffold/internal/core/scaffold"
)

var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderCard draws a rounded card with a marked title line and detail lines.
func renderCard(mark lipgloss.Style, symbol, title string, details ...string) string {
	var body strings.Builder
	body.WriteString(mark.Render(symbol) + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle().Render(body.String())
}

func renderSuccessCard(title string, details ...string) string {
	return renderCard(cliSuccess, "✓", title, details...)
}

func renderWarnCard(title string, details ...string) string {
	return renderCard(cliWarn, "!", title, details...)
}

// renderSummary formats the completion report for a generation run.
func renderSummary(r *scaffold.Result) string {
	details := []string{
		fmt.Sprintf("%s %s", cliMuted.Render("Project root:"), r.ProjectRoot),
		fmt.Sprintf("%s %d", cliMuted.Render("Directories: "), len(r.CreatedDirs)),
		fmt.Sprintf("%s %d", cliMuted.Render("Files:       "), len(r.CreatedFiles)+len(r.Emitted)),
	}
	for _, e := range r.Emitted {
		details = append(details, fmt.Sprintf("  %s %s", cliMuted.Render("+"), e.Path))
	}

	var b strings.Builder
	if r.DryRun {
		b.WriteString(renderWarnCard("Dry run: nothing was written", details...))
	} else {
		b.WriteString(renderSuccessCard("Project skeleton created", details...))
	}
	b.WriteString("\n\n")

	b.WriteString(cliPrimary.Bold(true).Render("Includes"))
	b.WriteString("\n")
	for _, h := range scaffold.Highlights() {
		b.WriteString("  " + cliSuccess.Render("•") + " " + h + "\n")
	}
	b.WriteString("\n")

	b.WriteString(cliPrimary.Bold(true).Render("Next steps"))
	b.WriteString("\n")
	for i, s := range scaffold.NextSteps(r) {
		fmt.Fprintf(&b, "  %s %s\n", cliMuted.Render(fmt.Sprintf("%d.", i+1)), s)
	}
	return b.String()
}
