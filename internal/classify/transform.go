package classify

import (
	"strings"
	"unicode"
)

// Transform reverses letters and alternates their case, starting upper-case.
// Only letters take part in the alternation; anything else is dropped.
//
//	Transform("abc")  == "CbA"
//	Transform("abcd") == "DcBa"
func Transform(letters string) string {
	if letters == "" {
		return ""
	}

	runes := []rune(letters)
	var b strings.Builder
	b.Grow(len(letters))

	idx := 0
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if !unicode.IsLetter(r) {
			continue
		}
		if idx%2 == 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		idx++
	}

	return b.String()
}
