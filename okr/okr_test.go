package okr

import (
	"encoding/json"
	"testing"
)

func TestSpanMarshalShape(t *testing.T) {
	data, err := json.Marshal(Span{Text: "dog", Indices: []int{3}})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	if string(data) != `["dog",[3]]` {
		t.Errorf("unexpected wire shape: %s", data)
	}
}

func TestSpanUnmarshal(t *testing.T) {
	var s Span
	if err := json.Unmarshal([]byte(`["New York",[2,3]]`), &s); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if s.Text != "New York" {
		t.Errorf("unexpected text: %q", s.Text)
	}
	if len(s.Indices) != 2 || s.Indices[0] != 2 || s.Indices[1] != 3 {
		t.Errorf("unexpected indices: %v", s.Indices)
	}

	if err := json.Unmarshal([]byte(`["odd"]`), &s); err == nil {
		t.Error("expected error for one-element span")
	}
}

func TestSortSymbols(t *testing.T) {
	syms := []string{"A10", "A2", "A1"}
	SortSymbols(syms)

	if syms[0] != "A1" || syms[1] != "A2" || syms[2] != "A10" {
		t.Errorf("unexpected order: %v", syms)
	}
}
