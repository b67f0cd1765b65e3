package okr

import "fmt"

type symbolKind int

const (
	kindEntity symbolKind = iota
	kindPredicate
)

func (k symbolKind) String() string {
	if k == kindPredicate {
		return "predicate"
	}
	return "entity"
}

type binding struct {
	symbol string
	kind   symbolKind
}

// SymbolTable owns the per-parse symbol counters and the token index to
// symbol mapping. Symbols are generated lazily and memoized: one token
// index maps to at most one symbol, assigned on first request and
// returned unchanged afterwards. Counters are monotonic within one
// parse, so symbols are never reused.
type SymbolTable struct {
	entCount  int
	predCount int
	byIndex   map[int]binding
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byIndex: make(map[int]binding)}
}

// Entity returns the symbol bound to the 1-based token index,
// generating a new A* symbol on first request. Requesting an entity
// symbol for an index already bound to a predicate is an error:
// silently returning the wrong symbol would corrupt argument linkage.
func (t *SymbolTable) Entity(tokIndex int) (string, error) {
	return t.symbol(tokIndex, kindEntity)
}

// Predicate is the P* counterpart of Entity.
func (t *SymbolTable) Predicate(tokIndex int) (string, error) {
	return t.symbol(tokIndex, kindPredicate)
}

func (t *SymbolTable) symbol(tokIndex int, kind symbolKind) (string, error) {
	if b, ok := t.byIndex[tokIndex]; ok {
		if b.kind != kind {
			return "", fmt.Errorf("token %d already bound to %s symbol %s, requested %s", tokIndex, b.kind, b.symbol, kind)
		}
		return b.symbol, nil
	}

	var sym string
	if kind == kindPredicate {
		t.predCount++
		sym = fmt.Sprintf("P%d", t.predCount)
	} else {
		t.entCount++
		sym = fmt.Sprintf("A%d", t.entCount)
	}
	t.byIndex[tokIndex] = binding{symbol: sym, kind: kind}
	return sym, nil
}

// FreshPredicate generates a predicate symbol without binding it to a
// token index. Used for implicit propositions, which have no lexical
// anchor.
func (t *SymbolTable) FreshPredicate() string {
	t.predCount++
	return fmt.Sprintf("P%d", t.predCount)
}

// Lookup returns the symbol bound to the token index, of either kind.
func (t *SymbolTable) Lookup(tokIndex int) (string, bool) {
	b, ok := t.byIndex[tokIndex]
	return b.symbol, ok
}

// TokenIndex is the inverse lookup: the token index that generated the
// symbol. The mapping is injective, so the answer is unique.
func (t *SymbolTable) TokenIndex(symbol string) (int, bool) {
	for idx, b := range t.byIndex {
		if b.symbol == symbol {
			return idx, true
		}
	}
	return 0, false
}
