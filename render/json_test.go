package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/openokr/okr/okr"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var results []okr.OKR
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestJSONRendererRenderOneResult(t *testing.T) {
	record := okr.OKR{
		Sentence: "John saw the dog",
		Entities: map[string]okr.Span{
			"A1": {Text: "dog", Indices: []int{3}},
			"A2": {Text: "John", Indices: []int{0}},
		},
		Predicates: map[string]okr.Predicate{
			"P1": {
				Bare:     okr.Span{Text: "saw", Indices: []int{1}},
				Template: "{A2} saw {A1}",
				Head: okr.Head{
					Surface: okr.Span{Text: "saw", Indices: []int{1}},
					Lemma:   "see",
					POS:     "VBD",
				},
				Arguments: []string{"A1", "A2"},
			},
		},
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render([]okr.OKR{record}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var results []okr.OKR
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Sentence != "John saw the dog" {
		t.Errorf("unexpected sentence: %q", results[0].Sentence)
	}

	if results[0].Entities["A1"].Text != "dog" {
		t.Errorf("unexpected entity A1: %+v", results[0].Entities["A1"])
	}

	pred := results[0].Predicates["P1"]
	if pred.Template != "{A2} saw {A1}" {
		t.Errorf("unexpected template: %q", pred.Template)
	}
	if len(pred.Arguments) != 2 {
		t.Errorf("unexpected arguments: %v", pred.Arguments)
	}
}

func TestRendererResolve(t *testing.T) {
	record := &okr.OKR{
		Entities: map[string]okr.Span{
			"A1": {Text: "dog", Indices: []int{3}},
			"A2": {Text: "John", Indices: []int{0}},
		},
		Predicates: map[string]okr.Predicate{
			"P1": {Bare: okr.Span{Text: "saw", Indices: []int{1}}, Template: "{A2} saw {A1}"},
		},
	}

	r := NewRenderer(&bytes.Buffer{})
	if got := r.Resolve(record, "{A2} saw {A1}"); got != "John saw dog" {
		t.Errorf("unexpected resolution: %q", got)
	}
	if got := r.Resolve(record, "{P1} again"); got != "saw again" {
		t.Errorf("unexpected resolution: %q", got)
	}
}
