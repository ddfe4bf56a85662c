package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/getlawrence/stenum/internal/syntax"
)

// RenderVersions returns the styled table of syntax versions and the
// features each one unlocks.
func RenderVersions(versions []syntax.Version, gates []syntax.Gate) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Syntax versions"))
	b.WriteString("\n\n")

	nameWidth := len("Version")
	for _, v := range versions {
		if w := lipgloss.Width(v.String()); w > nameWidth {
			nameWidth = w
		}
	}
	cell := lipgloss.NewStyle().Width(nameWidth + 2)

	b.WriteString(cell.Render(HeaderStyle.Render("Version")))
	b.WriteString(HeaderStyle.Render("Features"))
	b.WriteString("\n")

	latest := syntax.Max()
	for _, v := range versions {
		var features []string
		for _, g := range gates {
			if g.Since == v {
				features = append(features, string(g.Feature))
			}
		}
		list := strings.Join(features, ", ")
		if list == "" {
			list = MutedStyle.Render("baseline")
		}
		name := v.String()
		if v == latest {
			name += "*"
		}
		b.WriteString(cell.Render(name))
		b.WriteString(list)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("* default when no version is given (%s)", latest)))
	b.WriteString("\n")
	return b.String()
}
