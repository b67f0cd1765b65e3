package parser

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openokr/okr/props"
	sent "github.com/openokr/okr/sentence"
)

func TestResultGraphResolvesNeighbors(t *testing.T) {
	r := Result{
		Nodes: []NodePayload{
			{ID: 1, Predicate: true, Span: []props.Word{{Index: 2, Text: "saw"}}, Neighbors: map[string][]int{"subj": {2}}},
			{ID: 2, Span: []props.Word{{Index: 1, Text: "John"}}},
		},
	}

	g, err := r.Graph()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nodes := g.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}

	subj := nodes[0].Neighbors["subj"]
	if len(subj) != 1 || subj[0] != nodes[1] {
		t.Errorf("expected resolved neighbor pointer, got %v", subj)
	}
}

func TestResultGraphUnknownNeighbor(t *testing.T) {
	r := Result{
		Nodes: []NodePayload{
			{ID: 1, Neighbors: map[string][]int{"obj": {9}}},
		},
	}

	if _, err := r.Graph(); err == nil {
		t.Fatal("expected error for unknown neighbor id")
	}
}

func TestClientParse(t *testing.T) {
	result := Result{
		Tokens: []sent.Token{
			{Index: 1, Text: "John", Dep: "nsubj", Head: 2},
			{Index: 2, Text: "left", Dep: "root", Head: 0},
		},
		Nodes: []NodePayload{
			{ID: 1, Predicate: true, Span: []props.Word{{Index: 2, Text: "left"}}, Neighbors: map[string][]int{"subj": {2}}},
			{ID: 2, Span: []props.Word{{Index: 1, Text: "John"}}},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if body["sentence"] != "John left" {
			t.Errorf("unexpected sentence: %q", body["sentence"])
		}
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer srv.Close()

	tree, graph, err := NewClient(srv.URL).Parse(context.Background(), "John left")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Text() != "John left" {
		t.Errorf("unexpected tree text: %q", tree.Text())
	}
	if len(graph.Nodes()) != 2 {
		t.Errorf("expected 2 graph nodes, got %d", len(graph.Nodes()))
	}
}

func TestClientParseServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, _, err := NewClient(srv.URL).Parse(context.Background(), "John left"); err == nil {
		t.Fatal("expected error on server failure")
	}
}
