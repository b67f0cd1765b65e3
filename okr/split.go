package okr

import (
	"fmt"

	"github.com/openokr/okr/ner"
)

// splitEntities rewrites the raw entity map produced by predicate
// extraction so that every final entity is either a single word or a
// recognized named-entity span. Tokens dropped from a span become their
// own entities, linked back to the span head by an implicit proposition
// or, for prepositions, by an explicit two-argument predicate.
// Determiners are never materialized.
func (st *state) splitEntities() error {
	out := make(map[string]Span, len(st.entities))

	// Named entities not yet emitted, so the same one is never created
	// twice.
	toInsert := make(map[ner.Span]bool)
	for _, sp := range st.neByRoot {
		toInsert[sp] = true
	}

	for _, headSym := range st.entitySymbols() {
		span := st.entities[headSym]

		headIdx, ok := st.symbols.TokenIndex(headSym)
		if !ok {
			return fmt.Errorf("entity %s has no bound token index", headSym)
		}

		// Named-entity precedence: a head inside a recognized span
		// replaces the whole entity with that span.
		if ne, inside := st.neByToken[headIdx-1]; inside {
			out[headSym] = Span{Text: ne.Text, Indices: ne.Indices()}
			delete(toInsert, ne)
		}

		for _, ind := range span.Indices {
			tok, found := st.tree.Token(ind + 1)
			if !found {
				return fmt.Errorf("entity %s covers unknown token %d", headSym, ind+1)
			}

			if ind+1 == headIdx {
				// The head becomes a single-word entity unless the
				// named-entity branch already filled it.
				if _, done := out[headSym]; !done {
					out[headSym] = Span{Text: tok.Text, Indices: []int{ind}}
				}
				continue
			}

			// A token rooting a not-yet-emitted named entity promotes
			// the whole span to a brand-new entity.
			if ne, isRoot := st.neByRoot[ind]; isRoot && toInsert[ne] {
				sym, err := st.symbols.Entity(ind + 1)
				if err != nil {
					return err
				}
				out[sym] = Span{Text: ne.Text, Indices: ne.Indices()}
				delete(toInsert, ne)
				continue
			}

			// Tokens inside a named entity belong to a span emitted
			// elsewhere.
			if _, inside := st.neByToken[ind]; inside {
				continue
			}

			if tok.Dep == "det" {
				continue
			}

			// A preposition whose sole child lies in this span encodes
			// the relation itself: emit the child as an entity and the
			// preposition as an explicit predicate over head and child.
			children := st.tree.Children(tok.Index)
			if tok.Dep == "prep" && len(children) == 1 && containsIndex(span.Indices, children[0].Index-1) {
				child := children[0]

				childSym, err := st.symbols.Entity(child.Index)
				if err != nil {
					return err
				}
				out[childSym] = Span{Text: child.Text, Indices: []int{child.Index - 1}}

				prepSym, err := st.symbols.Predicate(tok.Index)
				if err != nil {
					return err
				}
				st.predicates[prepSym] = Predicate{
					Bare:     Span{Text: tok.Text, Indices: []int{ind}},
					Template: fmt.Sprintf("{%s} %s {%s}", headSym, tok.Text, childSym),
					Head: Head{
						Surface: Span{Text: tok.Text, Indices: []int{ind}},
						Lemma:   tok.Text,
						POS:     "IN",
					},
					Arguments: []string{headSym, childSym},
				}
				continue
			}

			// Prepositional objects whose parent is in the span are
			// picked up by the preposition branch above.
			if tok.Dep == "pobj" && containsIndex(span.Indices, tok.Head-1) {
				continue
			}

			// Default: the token becomes its own entity, linked to the
			// span head by an implicit proposition. Arguments are
			// ordered by sentence position.
			sym, err := st.symbols.Entity(tok.Index)
			if err != nil {
				return err
			}
			out[sym] = Span{Text: tok.Text, Indices: []int{ind}}

			first, second := sym, headSym
			if headIdx < tok.Index {
				first, second = headSym, sym
			}
			st.predicates[st.symbols.FreshPredicate()] = implicitProposition(first, second)
		}
	}

	st.entities = out
	return nil
}

func containsIndex(indices []int, index int) bool {
	for _, i := range indices {
		if i == index {
			return true
		}
	}
	return false
}
