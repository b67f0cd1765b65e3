package props

import "sort"

// Copula is the surface form of synthesized copular nodes. Implicit
// nodes carrying it act as same-as links between their neighbors, not
// as arguments in their own right.
const Copula = "be"

// Word is one token of a node span.
type Word struct {
	// The 1-based position of the word in the sentence.
	Index int `json:"index"`

	Text string `json:"text"`
}

// Node is a vertex of the proposition graph.
type Node struct {
	ID int `json:"id"`

	IsPredicate bool `json:"predicate"`
	Implicit    bool `json:"implicit"`
	Conj        bool `json:"conj"`

	// Span holds the node's own tokens.
	Span []Word `json:"span"`

	// Subtree holds the yield of the node's whole subtree.
	Subtree []Word `json:"subtree"`

	// Neighbors maps a relation label to the nodes it points at.
	Neighbors map[string][]*Node `json:"-"`

	Features map[string]string `json:"features"`
}

// HeadIndex projects the node onto a single 1-based token index: the
// minimal span index for predicates, the maximal one for non-predicates
// (nouns head their phrase at the last word).
func (n *Node) HeadIndex() int {
	if len(n.Span) == 0 {
		return 0
	}

	idx := n.Span[0].Index
	for _, w := range n.Span[1:] {
		if n.IsPredicate {
			if w.Index < idx {
				idx = w.Index
			}
		} else if w.Index > idx {
			idx = w.Index
		}
	}
	return idx
}

// Lemma returns the node's lemma feature, empty when absent.
func (n *Node) Lemma() string {
	return n.Features["Lemma"]
}

func (n *Node) isCopula() bool {
	return n.Implicit && len(n.Span) > 0 && n.Span[0].Text == Copula
}

// flat returns the node's direct neighbors across all relation labels,
// labels in sorted order so enumeration is reproducible.
func (n *Node) flat() []*Node {
	labels := make([]string, 0, len(n.Neighbors))
	for label := range n.Neighbors {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var out []*Node
	for _, label := range labels {
		out = append(out, n.Neighbors[label]...)
	}
	return out
}

// Neighbors returns the node's proposition neighbors with copula nodes
// collapsed: an implicit copula neighbor is transparently replaced by
// its own neighbors, recursively. The visited set guards against
// malformed copula cycles.
func Neighbors(n *Node) []*Node {
	var out []*Node
	added := make(map[*Node]bool)
	visited := map[*Node]bool{n: true}

	var walk func(*Node)
	walk = func(cur *Node) {
		for _, nb := range cur.flat() {
			if nb.isCopula() {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				walk(nb)
				continue
			}
			if !added[nb] {
				added[nb] = true
				out = append(out, nb)
			}
		}
	}
	walk(n)

	return out
}

// Graph is the proposition graph of one sentence. Nodes enumerate in
// insertion order.
type Graph struct {
	nodes []*Node
}

func NewGraph(nodes ...*Node) *Graph {
	return &Graph{nodes: nodes}
}

func (g *Graph) Add(n *Node) {
	g.nodes = append(g.nodes, n)
}

func (g *Graph) Nodes() []*Node {
	return g.nodes
}
