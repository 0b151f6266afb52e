package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opmodel/bfhl/internal/classify"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: user IDs, config keys.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen marks even numbers and successful results.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow marks odd numbers.
	ColorYellow = lipgloss.Color("220")

	// ColorBlue marks alphabetic words and table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorBoldRed marks failed results.
	ColorBoldRed = lipgloss.Color("204")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome and null values.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHeader styles table headers.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
)

// CategoryStyle returns the style for a token category.
func CategoryStyle(c classify.Category) lipgloss.Style {
	switch c {
	case classify.EvenNumber:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case classify.OddNumber:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case classify.AlphabeticWord:
		return lipgloss.NewStyle().Foreground(ColorBlue)
	default:
		return lipgloss.NewStyle().Faint(true)
	}
}

// SuccessStyle returns the style for the is_success value.
func SuccessStyle(ok bool) lipgloss.Style {
	if ok {
		return lipgloss.NewStyle().Foreground(ColorGreen)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreen).Render("✔")
	return check + " " + msg
}
