package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for section headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleLabel for the name half of a key/value row.
	styleLabel = lipgloss.NewStyle().Foreground(colorDim)

	// styleValue for the value half of a key/value row.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

// printSection writes a styled heading.
func printSection(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

// printKV writes one aligned key/value row under a section.
func printKV(w io.Writer, key, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n",
		styleLabel.Render(fmt.Sprintf("%-22s", key)),
		styleValue.Render(fmt.Sprintf(format, args...)))
}
