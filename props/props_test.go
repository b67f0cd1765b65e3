package props

import "testing"

func TestHeadIndex(t *testing.T) {
	pred := &Node{
		IsPredicate: true,
		Span:        []Word{{Index: 5, Text: "give"}, {Index: 7, Text: "up"}},
	}
	if got := pred.HeadIndex(); got != 5 {
		t.Errorf("expected predicate head 5, got %d", got)
	}

	noun := &Node{
		Span: []Word{{Index: 3, Text: "New"}, {Index: 4, Text: "York"}},
	}
	if got := noun.HeadIndex(); got != 4 {
		t.Errorf("expected non-predicate head 4, got %d", got)
	}
}

func TestNeighborsCollapsesCopula(t *testing.T) {
	target := &Node{ID: 1, Span: []Word{{Index: 3, Text: "mayor"}}}
	copula := &Node{
		ID:        2,
		Implicit:  true,
		Span:      []Word{{Index: 0, Text: Copula}},
		Neighbors: map[string][]*Node{"obj": {target}},
	}
	source := &Node{
		ID:          3,
		IsPredicate: true,
		Span:        []Word{{Index: 1, Text: "met"}},
		Neighbors:   map[string][]*Node{"comp": {copula}},
	}

	got := Neighbors(source)
	if len(got) != 1 || got[0] != target {
		t.Fatalf("expected collapsed neighbor, got %v", got)
	}
}

func TestNeighborsNestedCopulaChain(t *testing.T) {
	target := &Node{ID: 1, Span: []Word{{Index: 4, Text: "president"}}}
	inner := &Node{
		ID:        2,
		Implicit:  true,
		Span:      []Word{{Index: 0, Text: Copula}},
		Neighbors: map[string][]*Node{"obj": {target}},
	}
	outer := &Node{
		ID:        3,
		Implicit:  true,
		Span:      []Word{{Index: 0, Text: Copula}},
		Neighbors: map[string][]*Node{"obj": {inner}},
	}
	source := &Node{
		ID:        4,
		Span:      []Word{{Index: 1, Text: "he"}},
		Neighbors: map[string][]*Node{"comp": {outer}},
	}

	got := Neighbors(source)
	if len(got) != 1 || got[0] != target {
		t.Fatalf("expected chain-collapsed neighbor, got %v", got)
	}
}

func TestNeighborsCopulaCycle(t *testing.T) {
	a := &Node{ID: 1, Implicit: true, Span: []Word{{Index: 0, Text: Copula}}}
	b := &Node{ID: 2, Implicit: true, Span: []Word{{Index: 0, Text: Copula}}}
	a.Neighbors = map[string][]*Node{"obj": {b}}
	b.Neighbors = map[string][]*Node{"obj": {a}}

	source := &Node{
		ID:        3,
		Span:      []Word{{Index: 1, Text: "it"}},
		Neighbors: map[string][]*Node{"comp": {a}},
	}

	// Must terminate and yield no real neighbors.
	if got := Neighbors(source); len(got) != 0 {
		t.Fatalf("expected no neighbors from copula cycle, got %v", got)
	}
}

func TestNeighborsDeduplicates(t *testing.T) {
	target := &Node{ID: 1, Span: []Word{{Index: 2, Text: "dog"}}}
	copula := &Node{
		ID:        2,
		Implicit:  true,
		Span:      []Word{{Index: 0, Text: Copula}},
		Neighbors: map[string][]*Node{"obj": {target}},
	}
	source := &Node{
		ID:        3,
		Span:      []Word{{Index: 1, Text: "pet"}},
		Neighbors: map[string][]*Node{"obj": {target}, "comp": {copula}},
	}

	if got := Neighbors(source); len(got) != 1 {
		t.Fatalf("expected deduplicated neighbor list, got %v", got)
	}
}

func TestGraphOrder(t *testing.T) {
	a := &Node{ID: 1}
	b := &Node{ID: 2}

	g := NewGraph(a)
	g.Add(b)

	nodes := g.Nodes()
	if len(nodes) != 2 || nodes[0] != a || nodes[1] != b {
		t.Errorf("expected insertion order, got %v", nodes)
	}
}
