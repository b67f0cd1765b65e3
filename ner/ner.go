package ner

import "context"

// Span is an externally tagged contiguous token range denoting a
// real-world entity category.
type Span struct {
	// Start is the 0-based offset of the first token, End the offset
	// one past the last.
	Start int `json:"start"`
	End   int `json:"end"`

	// Root is the 0-based index of the span's syntactic root token.
	Root int `json:"root"`

	Label string `json:"label"`
	Text  string `json:"text"`
}

// Indices returns the 0-based token indices covered by the span.
func (s Span) Indices() []int {
	out := make([]int, 0, s.End-s.Start)
	for i := s.Start; i < s.End; i++ {
		out = append(out, i)
	}
	return out
}

// Contains reports whether the 0-based token index falls inside the span.
func (s Span) Contains(index int) bool {
	return index >= s.Start && index < s.End
}

// relevantLabels is the fixed allow-list of honored categories.
// Spans with any other label are ignored entirely.
var relevantLabels = map[string]bool{
	"PERSON":      true,
	"NORP":        true,
	"FACILITY":    true,
	"ORG":         true,
	"GPE":         true,
	"LOC":         true,
	"PRODUCT":     true,
	"EVENT":       true,
	"WORK_OF_ART": true,
	"LANGUAGE":    true,
	"DATE":        true,
	"TIME":        true,
	"QUANTITY":    true,
	"MONEY":       true,
}

// Relevant filters spans down to the honored category labels.
func Relevant(spans []Span) []Span {
	var out []Span
	for _, s := range spans {
		if relevantLabels[s.Label] {
			out = append(out, s)
		}
	}
	return out
}

// Recognizer tags named-entity spans over a raw sentence. It is an
// external collaborator, invoked once per sentence.
type Recognizer interface {
	Recognize(ctx context.Context, sentence string) ([]Span, error)
}
