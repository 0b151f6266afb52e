package classify

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseFunc parses a token that matched the numeric pattern.
type ParseFunc func(s string) (*big.Int, error)

// ParseInteger parses a base-10 integer of any length.
func ParseInteger(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

// Classification is the successful output of the pipeline.
type Classification struct {
	// Tokens is every input token with its category, in input order.
	Tokens []ClassifiedToken

	// Numbers holds every numeric token, Even and Odd split them by parity.
	// All three echo the tokens verbatim.
	Numbers []string
	Even    []string
	Odd     []string

	// Alphabets holds the alphabetic words upper-cased.
	Alphabets []string

	// Special holds every other token as given, nulls included.
	Special []Token

	// Sum is the sum of all numeric tokens.
	Sum *big.Int

	// Letters is the concatenation of the alphabetic words, original case.
	Letters string

	// Transform is Transform(Letters).
	Transform string
}

// Outcome is either a Classification or a pipeline failure, never both.
type Outcome struct {
	Classification *Classification
	Err            error
}

// OK reports whether the pipeline succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Classification != nil
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithParser replaces the integer parser.
func WithParser(fn ParseFunc) Option {
	return func(p *Pipeline) {
		p.parse = fn
	}
}

// Pipeline classifies token lists. It is immutable once built.
type Pipeline struct {
	parse ParseFunc
}

// NewPipeline creates a pipeline with the given options applied.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{parse: ParseInteger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultPipeline = NewPipeline()

// Default returns the shared pipeline using ParseInteger.
func Default() *Pipeline {
	return defaultPipeline
}

// Classify runs classification, aggregation, letter extraction and the
// transform. Any failure, a panic included, is reported in Outcome.Err.
func (p *Pipeline) Classify(tokens []Token) (out Outcome) {
	stage := StageClassify
	index := -1
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Err: &PipelineError{Stage: stage, Index: index, Cause: fmt.Errorf("panic: %v", r)}}
		}
	}()

	c := &Classification{
		Tokens:    make([]ClassifiedToken, 0, len(tokens)),
		Numbers:   make([]string, 0),
		Even:      make([]string, 0),
		Odd:       make([]string, 0),
		Alphabets: make([]string, 0),
		Special:   make([]Token, 0),
		Sum:       new(big.Int),
	}
	var letters strings.Builder

	for i, tok := range tokens {
		index = i
		stage = StageClassify

		s, ok := tok.Value()
		switch {
		case !ok:
			c.Special = append(c.Special, tok)
			c.Tokens = append(c.Tokens, ClassifiedToken{Token: tok, Category: Special})

		case IsNumeric(s):
			n, err := p.parse(s)
			if err != nil {
				return Outcome{Err: &PipelineError{Stage: stage, Index: i, Cause: err}}
			}
			if n == nil {
				return Outcome{Err: &PipelineError{Stage: stage, Index: i, Cause: fmt.Errorf("parser returned no value for %q", s)}}
			}

			stage = StageAggregate
			c.Sum.Add(c.Sum, n)
			c.Numbers = append(c.Numbers, s)

			cat := parity(n)
			if cat == EvenNumber {
				c.Even = append(c.Even, s)
			} else {
				c.Odd = append(c.Odd, s)
			}
			c.Tokens = append(c.Tokens, ClassifiedToken{Token: tok, Category: cat})

		case IsAlphabetic(s):
			c.Alphabets = append(c.Alphabets, strings.ToUpper(s))
			letters.WriteString(s)
			c.Tokens = append(c.Tokens, ClassifiedToken{Token: tok, Category: AlphabeticWord})

		default:
			c.Special = append(c.Special, tok)
			c.Tokens = append(c.Tokens, ClassifiedToken{Token: tok, Category: Special})
		}
	}

	stage = StageTransform
	index = -1
	c.Letters = letters.String()
	c.Transform = Transform(c.Letters)

	return Outcome{Classification: c}
}

// Process runs the full operation for one request. It never fails: a
// pipeline failure yields Failure(id) with Cause set.
func (p *Pipeline) Process(tokens []Token, id Identity) Result {
	out := p.Classify(tokens)
	if !out.OK() {
		res := Failure(id)
		res.Cause = out.Err
		return res
	}

	c := out.Classification
	return Result{
		IsSuccess:         true,
		UserID:            id.UserID(),
		Email:             id.Email,
		RollNumber:        id.RollNumber,
		Numbers:           c.Numbers,
		OddNumbers:        c.Odd,
		EvenNumbers:       c.Even,
		Alphabets:         c.Alphabets,
		SpecialCharacters: c.Special,
		Sum:               c.Sum.String(),
		ConcatString:      c.Transform,
		Tokens:            c.Tokens,
	}
}

// Process runs the default pipeline.
func Process(tokens []Token, id Identity) Result {
	return defaultPipeline.Process(tokens, id)
}
