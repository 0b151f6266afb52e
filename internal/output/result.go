package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/opmodel/bfhl/internal/classify"
)

// WriteResult writes res to w in the given format.
func WriteResult(w io.Writer, res classify.Result, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding result as JSON: %w", err)
		}
		return nil

	case FormatYAML:
		// sigs.k8s.io/yaml keys the document by the json tags.
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("encoding result as YAML: %w", err)
		}
		_, err = w.Write(data)
		return err

	case FormatTable:
		_, err := io.WriteString(w, RenderResult(res)+"\n")
		return err

	default:
		return fmt.Errorf("unsupported output format %q (valid: %s)", format, strings.Join(ValidFormats(), ", "))
	}
}

// RenderResult renders a summary table followed by the per-token breakdown.
func RenderResult(res classify.Result) string {
	summary := NewTable("FIELD", "VALUE")
	summary.Row("is_success", SuccessStyle(res.IsSuccess).Render(strconv.FormatBool(res.IsSuccess)))
	summary.Row("user_id", StyleNoun.Render(res.UserID))
	summary.Row("email", res.Email)
	summary.Row("roll_number", res.RollNumber)
	summary.Row("numbers", strings.Join(res.Numbers, ", "))
	summary.Row("even_numbers", strings.Join(res.EvenNumbers, ", "))
	summary.Row("odd_numbers", strings.Join(res.OddNumbers, ", "))
	summary.Row("alphabets", strings.Join(res.Alphabets, ", "))
	summary.Row("special_characters", joinTokens(res.SpecialCharacters))
	summary.Row("sum", res.Sum)
	summary.Row("concat_string", res.ConcatString)

	if len(res.Tokens) == 0 {
		return summary.String()
	}

	tokens := NewTable("#", "TOKEN", "CATEGORY")
	for i, ct := range res.Tokens {
		tokens.Row(strconv.Itoa(i), DisplayToken(ct.Token), CategoryStyle(ct.Category).Render(ct.Category.String()))
	}

	return summary.String() + "\n" + tokens.String()
}

// DisplayToken renders a token for terminal output: null is dimmed and
// empty or whitespace-padded strings are quoted.
func DisplayToken(tok classify.Token) string {
	s, ok := tok.Value()
	if !ok {
		return StyleDim.Render("null")
	}
	if s == "" || strings.TrimSpace(s) != s {
		return strconv.Quote(s)
	}
	return s
}

func joinTokens(tokens []classify.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, DisplayToken(t))
	}
	return strings.Join(parts, ", ")
}
