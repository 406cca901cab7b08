package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for user-facing output. Log lines get their colors from
// charmbracelet/log; these are only for stdout messages.
var (
	// ColorCyan is used for identifiable nouns: paths, identifiers, versions.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for secondary hints.
	ColorDimGray = lipgloss.Color("240")
)

var (
	// StyleNoun styles identifiable nouns (paths, package identifiers).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles secondary hint text.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)
)

// Checkmark renders a green checkmark with a message for stdout output.
func Checkmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FileEntry is one line of a created-files listing.
type FileEntry struct {
	Path        string
	Description string
}

// RenderFileList renders created files with descriptions aligned at the
// given column.
func RenderFileList(entries []FileEntry, column int) string {
	var b strings.Builder
	for _, e := range entries {
		if e.Description == "" {
			b.WriteString(e.Path + "\n")
			continue
		}
		padding := column - len(e.Path)
		if padding < 2 {
			padding = 2
		}
		b.WriteString(fmt.Sprintf("%s%s%s\n", e.Path, strings.Repeat(" ", padding), StyleDim.Render(e.Description)))
	}
	return b.String()
}
