package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	FoodColor    = lipgloss.Color("#43BF6D") // Green - selected food name
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - calorie line
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40 // Minimum supported terminal width
	MaxContentWidth  = 80 // Maximum content width before capping
	DefaultPadding   = 2  // Default padding inside boxes
)

// Shared styles
var (
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// QuestionStyle is for the "What should I eat?" prompt
	QuestionStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// FoodImageStyle is for the large emoji line
	FoodImageStyle = lipgloss.NewStyle().
			Padding(1, 0)

	// FoodNameStyle is for the selected food name
	FoodNameStyle = lipgloss.NewStyle().
			Foreground(FoodColor).
			Bold(true)

	// CalorieStyle is for the calorie line under the name
	CalorieStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// NutritionHeaderStyle is for the nutrition table header row
	NutritionHeaderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Bold(true).
				Padding(0, 1).
				Align(lipgloss.Center)

	// NutritionCellStyle is for nutrition table values
	NutritionCellStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Padding(0, 1).
				Align(lipgloss.Center)

	// InfoHintStyle is for the "(i) nutrition" hint next to the name
	InfoHintStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)
)

// Markers
const (
	InfoMarker    = "ⓘ"
	FailureMarker = "✗"
)

// GetTerminalWidth returns the current terminal width, clamped to the
// supported range.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MaxContentWidth
	}
	return ClampWidth(width)
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ClampWidth limits width to [MinTerminalWidth, MaxContentWidth].
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// CardBoxStyle returns the border style for the food card
func CardBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2).
		Padding(0, DefaultPadding).
		Align(lipgloss.Center)
}

// ErrorBoxStyle returns the border style for error boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width-2).
		Padding(0, DefaultPadding)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
