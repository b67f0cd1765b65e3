package parser

import (
	"context"
	"fmt"

	"github.com/openokr/okr/props"
	sent "github.com/openokr/okr/sentence"
)

// Service produces the two analyses of a whitespace-tokenized sentence:
// its dependency tree and its proposition graph. It is an external
// collaborator, invoked once per sentence.
type Service interface {
	Parse(ctx context.Context, sentence string) (*sent.Tree, *props.Graph, error)
}

// Result is the wire form of one parsed sentence.
type Result struct {
	Tokens []sent.Token  `json:"tokens"`
	Nodes  []NodePayload `json:"nodes"`
}

// NodePayload is the wire form of a proposition-graph node. Neighbor
// references are node ids, resolved into pointers by Graph.
type NodePayload struct {
	ID        int               `json:"id"`
	Predicate bool              `json:"predicate"`
	Implicit  bool              `json:"implicit"`
	Conj      bool              `json:"conj"`
	Span      []props.Word      `json:"span"`
	Subtree   []props.Word      `json:"subtree"`
	Neighbors map[string][]int  `json:"neighbors"`
	Features  map[string]string `json:"features"`
}

// Tree builds the dependency tree from the token dump.
func (r *Result) Tree() *sent.Tree {
	return sent.NewTree(r.Tokens)
}

// Graph builds the proposition graph, resolving neighbor ids into node
// pointers.
func (r *Result) Graph() (*props.Graph, error) {
	byID := make(map[int]*props.Node, len(r.Nodes))
	g := props.NewGraph()

	for _, p := range r.Nodes {
		n := &props.Node{
			ID:          p.ID,
			IsPredicate: p.Predicate,
			Implicit:    p.Implicit,
			Conj:        p.Conj,
			Span:        p.Span,
			Subtree:     p.Subtree,
			Neighbors:   make(map[string][]*props.Node),
			Features:    p.Features,
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate proposition node id %d", p.ID)
		}
		byID[p.ID] = n
		g.Add(n)
	}

	for _, p := range r.Nodes {
		n := byID[p.ID]
		for label, ids := range p.Neighbors {
			for _, id := range ids {
				nb, ok := byID[id]
				if !ok {
					return nil, fmt.Errorf("node %d references unknown neighbor %d", p.ID, id)
				}
				n.Neighbors[label] = append(n.Neighbors[label], nb)
			}
		}
	}

	return g, nil
}
