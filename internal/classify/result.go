package classify

// Result is the response of one classification request. The JSON field
// names are the wire contract of the /bfhl endpoint.
type Result struct {
	IsSuccess         bool     `json:"is_success"`
	UserID            string   `json:"user_id"`
	Email             string   `json:"email"`
	RollNumber        string   `json:"roll_number"`
	Numbers           []string `json:"numbers"`
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []Token  `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`

	// Tokens is the per-token breakdown, in input order. Empty on failure.
	Tokens []ClassifiedToken `json:"-"`

	// Cause is the pipeline failure behind a failed result.
	Cause error `json:"-"`
}

// Failure returns the fallback result: identity fields populated, every
// sequence empty, sum "0" and an empty transform string.
func Failure(id Identity) Result {
	return Result{
		IsSuccess:         false,
		UserID:            id.UserID(),
		Email:             id.Email,
		RollNumber:        id.RollNumber,
		Numbers:           []string{},
		OddNumbers:        []string{},
		EvenNumbers:       []string{},
		Alphabets:         []string{},
		SpecialCharacters: []Token{},
		Sum:               "0",
		ConcatString:      "",
		Tokens:            []ClassifiedToken{},
	}
}

// Counts returns the number of tokens per category.
func (r Result) Counts() map[Category]int {
	counts := make(map[Category]int, 4)
	for _, t := range r.Tokens {
		counts[t.Category]++
	}
	return counts
}
