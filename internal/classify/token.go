package classify

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Token is one element of the input list. The zero value is a null token.
type Token struct {
	value *string
}

// String returns a non-null token holding s.
func String(s string) Token {
	return Token{value: &s}
}

// Null returns a null token.
func Null() Token {
	return Token{}
}

// Tokens builds a token list from plain strings.
func Tokens(values ...string) []Token {
	out := make([]Token, 0, len(values))
	for _, v := range values {
		out = append(out, String(v))
	}
	return out
}

// IsNull reports whether the token was absent or null.
func (t Token) IsNull() bool {
	return t.value == nil
}

// Value returns the token text and false when the token is null.
func (t Token) Value() (string, bool) {
	if t.value == nil {
		return "", false
	}
	return *t.value, true
}

// String renders the token for humans; null renders as "null".
func (t Token) String() string {
	if t.value == nil {
		return "null"
	}
	return *t.value
}

// MarshalJSON encodes the token as a JSON string or null.
func (t Token) MarshalJSON() ([]byte, error) {
	if t.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*t.value)
}

// UnmarshalJSON accepts strings and null. Numbers and booleans are taken as
// their literal text, so [1, true] decodes like ["1", "true"]. Objects and
// arrays are rejected.
func (t *Token) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty token")
	}

	switch data[0] {
	case 'n':
		t.value = nil
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t.value = &s
		return nil
	case '{', '[':
		return &TokenTypeError{Literal: string(data)}
	default:
		// numbers, true, false
		s := string(data)
		t.value = &s
		return nil
	}
}

// TokenTypeError reports a data element that is not a scalar.
type TokenTypeError struct {
	Literal string
}

func (e *TokenTypeError) Error() string {
	lit := e.Literal
	if len(lit) > 32 {
		lit = lit[:32] + "..."
	}
	return fmt.Sprintf("token must be a string, number, boolean or null, got %s", lit)
}

// Request is the inbound document: {"data": [...]}.
type Request struct {
	Data []Token `json:"data"`
}

// DecodeTokens reads a token list from a JSON document. It accepts either a
// request object or a bare array. Empty input, a null document and a missing
// "data" field all yield an empty list.
func DecodeTokens(data []byte) ([]Token, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Token{}, nil
	}

	var tokens []Token
	if data[0] == '[' {
		if err := json.Unmarshal(data, &tokens); err != nil {
			return nil, fmt.Errorf("decoding token array: %w", err)
		}
	} else {
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("decoding request: %w", err)
		}
		tokens = req.Data
	}

	if tokens == nil {
		tokens = []Token{}
	}
	return tokens, nil
}
