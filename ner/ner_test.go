package ner

import "testing"

func TestRelevantFiltersLabels(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 2, Label: "PERSON", Text: "John Smith"},
		{Start: 3, End: 4, Label: "CARDINAL", Text: "three"},
		{Start: 5, End: 6, Label: "DATE", Text: "Monday"},
	}

	got := Relevant(spans)
	if len(got) != 2 {
		t.Fatalf("expected 2 relevant spans, got %d", len(got))
	}
	if got[0].Label != "PERSON" || got[1].Label != "DATE" {
		t.Errorf("unexpected labels: %v", got)
	}
}

func TestSpanIndices(t *testing.T) {
	s := Span{Start: 2, End: 4}

	indices := s.Indices()
	if len(indices) != 2 || indices[0] != 2 || indices[1] != 3 {
		t.Errorf("unexpected indices: %v", indices)
	}

	if !s.Contains(3) {
		t.Error("expected span to contain index 3")
	}
	if s.Contains(4) {
		t.Error("expected exclusive end")
	}
}
