package okr

import "github.com/openokr/okr/props"

// linkModifiers scans proposition nodes that survived entity splitting
// and emits their remaining non-predicate neighbors as implicit binary
// propositions. This captures adjectival and appositive modification
// that the predicate pass does not surface.
func (st *state) linkModifiers() error {
	for _, n := range st.graph.Nodes() {
		sym, bound := st.symbols.Lookup(n.HeadIndex())
		if !bound {
			continue
		}
		if _, isEntity := st.entities[sym]; !isEntity {
			continue
		}

		for _, mod := range props.Neighbors(n) {
			if mod.IsPredicate || mod.Implicit {
				continue
			}
			// Modifiers inside a named-entity span are already covered
			// by the recognized entity.
			if _, inside := st.neByToken[mod.HeadIndex()-1]; inside {
				continue
			}

			if err := st.addNodeEntity(mod); err != nil {
				return err
			}

			first, second := n, mod
			if mod.HeadIndex() < n.HeadIndex() {
				first, second = mod, n
			}

			a, err := st.symbols.Entity(first.HeadIndex())
			if err != nil {
				return err
			}
			b, err := st.symbols.Entity(second.HeadIndex())
			if err != nil {
				return err
			}

			st.predicates[st.symbols.FreshPredicate()] = implicitProposition(a, b)
		}
	}
	return nil
}

// addNodeEntity registers the node's full subtree span as an entity
// under its head symbol.
func (st *state) addNodeEntity(n *props.Node) error {
	sym, err := st.symbols.Entity(n.HeadIndex())
	if err != nil {
		return err
	}
	st.entities[sym] = wordSpan(sortedWords(n.Subtree))
	return nil
}
