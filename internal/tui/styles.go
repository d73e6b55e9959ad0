package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/anlythree/foodpicker/internal/ui"
	"github.com/anlythree/foodpicker/internal/version"
)

// AppName is shown in the screen header
const AppName = "FOODPICKER"

var (
	// PrimaryButtonStyle is the highlighted pick action
	PrimaryButtonStyle = lipgloss.NewStyle().
				Foreground(ui.TextColor).
				Background(ui.PrimaryColor).
				Bold(true).
				Padding(0, 3).
				MarginRight(2)

	// SecondaryButtonStyle is the bordered reset action
	SecondaryButtonStyle = lipgloss.NewStyle().
				Foreground(ui.MutedColor).
				Padding(0, 3)

	headerStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true)

	versionStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor)
)

// renderContainer wraps content with a header line and a help footer.
func renderContainer(content, footer string, width int) string {
	header := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(width).
		Render(headerStyle.Render(AppName) + " " + versionStyle.Render(version.Version))

	footerBlock := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(width).
		Render(footer)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", content, "", footerBlock)
}
