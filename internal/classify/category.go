package classify

import (
	"math/big"
	"regexp"
)

var (
	// numericPattern is checked before alphabeticPattern; a token must never
	// match both.
	numericPattern    = regexp.MustCompile(`^-?\d+$`)
	alphabeticPattern = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Category is the lexical class of a token.
type Category int

const (
	// Special covers null, empty, mixed, punctuation and symbol tokens.
	Special Category = iota
	EvenNumber
	OddNumber
	AlphabeticWord
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case EvenNumber:
		return "even"
	case OddNumber:
		return "odd"
	case AlphabeticWord:
		return "alphabet"
	default:
		return "special"
	}
}

// IsNumber reports whether the category is one of the numeric ones.
func (c Category) IsNumber() bool {
	return c == EvenNumber || c == OddNumber
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{EvenNumber, OddNumber, AlphabeticWord, Special}
}

// ClassifiedToken is a token tagged with its category.
type ClassifiedToken struct {
	Token    Token
	Category Category
}

// IsNumeric reports whether s is an optionally negative run of ASCII digits.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// IsAlphabetic reports whether s is a non-empty run of ASCII letters.
func IsAlphabetic(s string) bool {
	return alphabeticPattern.MatchString(s)
}

// Categorize returns the category of a single token. Numeric tokens are
// split by the parity of their value.
func Categorize(tok Token) Category {
	s, ok := tok.Value()
	switch {
	case !ok:
		return Special
	case IsNumeric(s):
		n, err := ParseInteger(s)
		if err != nil {
			return Special
		}
		return parity(n)
	case IsAlphabetic(s):
		return AlphabeticWord
	default:
		return Special
	}
}

func parity(n *big.Int) Category {
	if n.Bit(0) == 0 {
		return EvenNumber
	}
	return OddNumber
}
