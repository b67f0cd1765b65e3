// Package okr flattens a dependency tree plus a proposition graph into
// an Open Knowledge Representation record: entity and predicate symbols
// mapped to surface text, token spans and argument-filled templates.
package okr

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ImplicitText marks synthesized predicates that have no lexical anchor.
const ImplicitText = "IMPLICIT"

// ImplicitSpan is the span constant used for implicit predicates.
func ImplicitSpan() Span {
	return Span{Text: ImplicitText, Indices: []int{-1}}
}

// Span couples surface text with the 0-based indices of its tokens.
// It marshals as a two-element array, [text, [indices]].
type Span struct {
	Text    string
	Indices []int
}

func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{s.Text, s.Indices})
}

func (s *Span) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("span: expected two elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &s.Text); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &s.Indices)
}

// Head describes the lexical head of a predicate.
type Head struct {
	Surface Span   `json:"Surface"`
	Lemma   string `json:"Lemma"`
	POS     string `json:"POS"`
}

// Predicate is one predicate record of an OKR. It is never mutated
// after creation.
type Predicate struct {
	// Bare is the minimal token span realizing the predicate,
	// excluding its arguments, or the IMPLICIT marker.
	Bare Span `json:"Bare predicate"`

	// Template interleaves the bare-predicate words with {symbol}
	// placeholders in sentence order.
	Template string `json:"Template"`

	Head Head `json:"Head"`

	// Arguments lists entity symbols first, nested predicate symbols
	// last.
	Arguments []string `json:"Arguments"`
}

// OKR is the flattened record produced for one sentence.
type OKR struct {
	Sentence   string               `json:"Sentence"`
	Entities   map[string]Span      `json:"Entities"`
	Predicates map[string]Predicate `json:"Predicates"`
}

// implicitProposition builds a synthesized predicate over the given
// argument symbols.
func implicitProposition(args ...string) Predicate {
	placeholders := make([]string, len(args))
	for i, sym := range args {
		placeholders[i] = "{" + sym + "}"
	}
	return Predicate{
		Bare:     ImplicitSpan(),
		Template: strings.Join(placeholders, " "),
		Head: Head{
			Surface: ImplicitSpan(),
			Lemma:   ImplicitText,
			POS:     ImplicitText,
		},
		Arguments: args,
	}
}

// SortSymbols orders symbols of one family numerically, A2 before A10.
func SortSymbols(syms []string) {
	sort.Slice(syms, func(i, j int) bool {
		ni, erri := strconv.Atoi(syms[i][1:])
		nj, errj := strconv.Atoi(syms[j][1:])
		if erri != nil || errj != nil {
			return syms[i] < syms[j]
		}
		if syms[i][0] != syms[j][0] {
			return syms[i][0] < syms[j][0]
		}
		return ni < nj
	})
}
