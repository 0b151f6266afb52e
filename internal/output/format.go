package output

import "strings"

// Format specifies the output format for results.
type Format string

const (
	// FormatJSON outputs the result document as JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs the result document as YAML.
	FormatYAML Format = "yaml"

	// FormatTable outputs a human-readable summary table.
	FormatTable Format = "table"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format.
// Returns FormatJSON if the string is empty or invalid.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML
	case "table":
		return FormatTable
	default:
		return FormatJSON
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"json", "yaml", "table"}
}
