package sentence

import (
	"sort"
	"strings"
)

// Token represents a word of the sentence, with POS and dependency metadata.
type Token struct {
	// The 1-based position of the word in the sentence.
	Index int `json:"index"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	Pos string `json:"pos"`

	// Dep is the relation label to the head token.
	Dep string `json:"dep"`

	// Head is the Index of the parent token, 0 when attached to the root.
	Head int `json:"head"`
}

// Tree is the dependency tree of one sentence. Tokens are owned by the
// tree for the sentence's lifetime.
type Tree struct {
	byIndex  map[int]*Token
	children map[int][]*Token
	ordered  []*Token
}

// NewTree builds a tree from a token dump. Child lists are ordered by
// token index.
func NewTree(tokens []Token) *Tree {
	t := &Tree{
		byIndex:  make(map[int]*Token, len(tokens)),
		children: make(map[int][]*Token),
	}

	for i := range tokens {
		tok := tokens[i]
		t.byIndex[tok.Index] = &tok
		t.ordered = append(t.ordered, &tok)
	}

	sort.Slice(t.ordered, func(i, j int) bool {
		return t.ordered[i].Index < t.ordered[j].Index
	})

	for _, tok := range t.ordered {
		t.children[tok.Head] = append(t.children[tok.Head], tok)
	}

	return t
}

// Token returns the token at the given 1-based index.
func (t *Tree) Token(index int) (*Token, bool) {
	tok, ok := t.byIndex[index]
	return tok, ok
}

// Tokens returns all tokens in ascending index order.
func (t *Tree) Tokens() []*Token {
	return t.ordered
}

// Children returns the direct dependents of the token at index, ordered
// by token index.
func (t *Tree) Children(index int) []*Token {
	return t.children[index]
}

// Depth returns the number of head links between the token and the
// root. The walk is capped at the sentence length, so a malformed head
// cycle cannot loop forever.
func (t *Tree) Depth(index int) int {
	depth := 0
	cur, ok := t.byIndex[index]
	for ok && cur.Head != 0 && depth <= len(t.ordered) {
		depth++
		cur, ok = t.byIndex[cur.Head]
	}
	return depth
}

// Text reconstructs the space-separated sentence.
func (t *Tree) Text() string {
	words := make([]string, 0, len(t.ordered))
	for _, tok := range t.ordered {
		words = append(words, tok.Text)
	}
	return strings.Join(words, " ")
}
