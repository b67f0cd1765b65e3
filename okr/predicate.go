package okr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openokr/okr/props"
	sent "github.com/openokr/okr/sentence"
)

// auxLabels are the dependency relations folded into a predicate's bare
// span rather than materialized as entities of their own.
var auxLabels = map[string]bool{
	"det":     true,
	"neg":     true,
	"aux":     true,
	"auxpass": true,
	"prep":    true,
	"cc":      true,
	"conj":    true,
}

// qualifies applies the predicate selection filters.
func (st *state) qualifies(n *props.Node) bool {
	if !n.IsPredicate {
		return false
	}
	if !st.opts.ZeroArgs && len(n.Neighbors) == 0 {
		return false
	}
	if !st.opts.Implicits && n.Implicit {
		return false
	}
	if !st.opts.Conj && n.Conj {
		return false
	}
	return true
}

// extractPredicates selects the qualifying predicate nodes and builds a
// predicate record for each, in the order the graph enumerates them.
func (st *state) extractPredicates() error {
	for _, n := range st.graph.Nodes() {
		if st.qualifies(n) {
			st.predNodes = append(st.predNodes, n)
			st.qualified[n] = true
		}
	}

	for _, n := range st.predNodes {
		if err := st.parsePredicate(n); err != nil {
			return err
		}
	}
	return nil
}

// anchor locates a proposition node in the dependency tree: among the
// tokens covered by the node's span, the one closest to the root. A
// node whose span matches no dependency token means the two input
// graphs disagree, which rejects the whole sentence.
func (st *state) anchor(n *props.Node) (*sent.Token, error) {
	var best *sent.Token
	bestDepth := 0

	for _, w := range n.Span {
		tok, ok := st.tree.Token(w.Index)
		if !ok {
			continue
		}
		d := st.tree.Depth(tok.Index)
		if best == nil || d < bestDepth {
			best, bestDepth = tok, d
		}
	}

	if best == nil {
		return nil, fmt.Errorf("proposition node %d matches no dependency token", n.ID)
	}
	return best, nil
}

// dependentIndices collects the 1-based token indices covered by any of
// the node's direct proposition neighbors. Tokens in this set are real
// arguments and must not be swallowed into the bare predicate.
func (st *state) dependentIndices(n *props.Node) map[int]bool {
	out := make(map[int]bool)
	for _, nbs := range n.Neighbors {
		for _, nb := range nbs {
			for _, w := range nb.Span {
				out[w.Index] = true
			}
		}
	}
	return out
}

// barePredicate returns the multiword predicate rooted at the anchor:
// the anchor itself plus its auxiliary children that are not arguments,
// ordered by token index.
func (st *state) barePredicate(n *props.Node, anchor *sent.Token) []*sent.Token {
	deps := st.dependentIndices(n)

	toks := []*sent.Token{anchor}
	for _, child := range st.tree.Children(anchor.Index) {
		if auxLabels[child.Dep] && !deps[child.Index] {
			toks = append(toks, child)
		}
	}

	sort.Slice(toks, func(i, j int) bool { return toks[i].Index < toks[j].Index })
	return toks
}

func (st *state) parsePredicate(n *props.Node) error {
	anchor, err := st.anchor(n)
	if err != nil {
		return err
	}

	bare := st.barePredicate(n, anchor)
	bareWords := make([]string, len(bare))
	bareIndices := make([]int, len(bare))
	for i, tok := range bare {
		bareWords[i] = tok.Text
		bareIndices[i] = tok.Index - 1
	}

	predSym, err := st.symbols.Predicate(n.HeadIndex())
	if err != nil {
		return err
	}

	// Partition the copula-collapsed neighbors into nested predicates
	// and entity arguments. Implicit non-predicates are dropped.
	var nested, args []*props.Node
	for _, nb := range props.Neighbors(n) {
		switch {
		case st.qualified[nb]:
			nested = append(nested, nb)
		case !nb.Implicit:
			args = append(args, nb)
		}
	}

	// Template elements: bare-predicate words literally, arguments as
	// {symbol} placeholders at their head token index.
	type element struct {
		index int
		text  string
	}
	elems := make([]element, 0, len(bare)+len(nested)+len(args))
	for _, tok := range bare {
		elems = append(elems, element{tok.Index, tok.Text})
	}

	nestedSyms := make([]string, 0, len(nested))
	for _, nb := range nested {
		sym, err := st.symbols.Predicate(nb.HeadIndex())
		if err != nil {
			return err
		}
		nestedSyms = append(nestedSyms, sym)
		elems = append(elems, element{nb.HeadIndex(), "{" + sym + "}"})
	}

	argSyms := make([]string, 0, len(args))
	for _, nb := range args {
		sym, err := st.symbols.Entity(nb.HeadIndex())
		if err != nil {
			return err
		}
		argSyms = append(argSyms, sym)
		elems = append(elems, element{nb.HeadIndex(), "{" + sym + "}"})
	}

	sort.SliceStable(elems, func(i, j int) bool { return elems[i].index < elems[j].index })
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.text
	}

	st.predicates[predSym] = Predicate{
		Bare:     Span{Text: strings.Join(bareWords, " "), Indices: bareIndices},
		Template: strings.Join(parts, " "),
		Head: Head{
			Surface: Span{Text: anchor.Text, Indices: []int{anchor.Index - 1}},
			Lemma:   n.Lemma(),
			POS:     anchor.Pos,
		},
		Arguments: append(argSyms, nestedSyms...),
	}

	// Materialize each entity argument from its full subtree span. The
	// entity splitter revises these afterwards.
	for _, nb := range args {
		sym, err := st.symbols.Entity(nb.HeadIndex())
		if err != nil {
			return err
		}
		st.entities[sym] = wordSpan(sortedWords(nb.Subtree))
	}

	return nil
}

// wordSpan converts an ordered word list into an output span with
// 0-based indices.
func wordSpan(words []props.Word) Span {
	texts := make([]string, len(words))
	indices := make([]int, len(words))
	for i, w := range words {
		texts[i] = w.Text
		indices[i] = w.Index - 1
	}
	return Span{Text: strings.Join(texts, " "), Indices: indices}
}
