package ui

import (
	"strings"
)

// RenderErrorBox renders a failure box with optional troubleshooting tips.
func RenderErrorBox(title string, err error, troubleshooting []string, width int) string {
	width = ClampWidth(width)

	lines := []string{
		"",
		ErrorTitleStyle.Render(FailureMarker + "  FAILED  ─  " + title),
		"",
	}

	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+err.Error()), "")
	}

	if len(troubleshooting) > 0 {
		lines = append(lines, TroubleshootingTitleStyle.Render("Troubleshooting:"))
		for _, tip := range troubleshooting {
			lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}
