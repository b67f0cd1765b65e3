package okr

import (
	"sort"

	"github.com/openokr/okr/ner"
	"github.com/openokr/okr/props"
	sent "github.com/openokr/okr/sentence"
)

// Options control which proposition nodes qualify as predicates.
type Options struct {
	// Implicits keeps predicates without a lexical anchor.
	Implicits bool

	// ZeroArgs keeps predicates that have no proposition neighbors.
	ZeroArgs bool

	// Conj keeps conjunction predicates.
	Conj bool
}

// Builder flattens one sentence's dependency tree and proposition graph
// into an OKR record. A Builder carries only configuration and may be
// reused across sentences; all mutable state lives in a per-parse
// context created by Build.
type Builder struct {
	opts Options
}

func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Build runs the three passes in fixed order: extract predicates, split
// entities, link modifiers. Either a full OKR is produced or the
// sentence is rejected with an error; there is no partial result.
func (b *Builder) Build(tree *sent.Tree, graph *props.Graph, spans []ner.Span) (*OKR, error) {
	st := newState(b.opts, tree, graph, ner.Relevant(spans))

	if err := st.extractPredicates(); err != nil {
		return nil, err
	}
	if err := st.splitEntities(); err != nil {
		return nil, err
	}
	if err := st.linkModifiers(); err != nil {
		return nil, err
	}

	return &OKR{
		Sentence:   tree.Text(),
		Entities:   st.entities,
		Predicates: st.predicates,
	}, nil
}

// state is the per-sentence context. It is created at the start of each
// Build call and discarded with the returned OKR, so nothing leaks
// across sentences.
type state struct {
	opts  Options
	tree  *sent.Tree
	graph *props.Graph

	symbols    *SymbolTable
	entities   map[string]Span
	predicates map[string]Predicate

	// predNodes are the qualifying predicate nodes, in graph order.
	predNodes []*props.Node
	qualified map[*props.Node]bool

	// neByToken maps each 0-based token index covered by a recognized
	// named entity to its span; neByRoot maps a span's 0-based root
	// token index to it.
	neByToken map[int]ner.Span
	neByRoot  map[int]ner.Span
}

func newState(opts Options, tree *sent.Tree, graph *props.Graph, spans []ner.Span) *state {
	st := &state{
		opts:       opts,
		tree:       tree,
		graph:      graph,
		symbols:    NewSymbolTable(),
		entities:   make(map[string]Span),
		predicates: make(map[string]Predicate),
		qualified:  make(map[*props.Node]bool),
		neByToken:  make(map[int]ner.Span),
		neByRoot:   make(map[int]ner.Span),
	}

	for _, sp := range spans {
		for _, idx := range sp.Indices() {
			st.neByToken[idx] = sp
		}
		st.neByRoot[sp.Root] = sp
	}

	return st
}

// entitySymbols returns the current entity map keys in numeric order,
// for reproducible iteration.
func (st *state) entitySymbols() []string {
	syms := make([]string, 0, len(st.entities))
	for sym := range st.entities {
		syms = append(syms, sym)
	}
	SortSymbols(syms)
	return syms
}

// sortedWords deduplicates a word list by token index and orders it.
func sortedWords(words []props.Word) []props.Word {
	seen := make(map[int]bool, len(words))
	out := make([]props.Word, 0, len(words))
	for _, w := range words {
		if seen[w.Index] {
			continue
		}
		seen[w.Index] = true
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
