package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/opmodel/bfhl/internal/classify"
)

func TestCategoryStyle(t *testing.T) {
	tests := []struct {
		name     string
		category classify.Category
		wantFG   lipgloss.TerminalColor
		wantDim  bool
	}{
		{"even is green", classify.EvenNumber, ColorGreen, false},
		{"odd is yellow", classify.OddNumber, ColorYellow, false},
		{"alphabet is blue", classify.AlphabeticWord, ColorBlue, false},
		{"special is faint", classify.Special, lipgloss.NoColor{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := CategoryStyle(tt.category)
			assert.Equal(t, tt.wantFG, style.GetForeground())
			assert.Equal(t, tt.wantDim, style.GetFaint())
		})
	}
}

func TestSuccessStyle(t *testing.T) {
	assert.Equal(t, lipgloss.TerminalColor(ColorGreen), SuccessStyle(true).GetForeground())
	assert.Equal(t, lipgloss.TerminalColor(ColorBoldRed), SuccessStyle(false).GetForeground())
	assert.True(t, SuccessStyle(false).GetBold())
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("config written")
	assert.True(t, strings.HasSuffix(out, " config written"))
	assert.Contains(t, out, "✔")
}
