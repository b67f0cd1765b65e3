package sentence

import "testing"

func testTree() *Tree {
	return NewTree([]Token{
		{Index: 1, Text: "John", Dep: "nsubj", Head: 2},
		{Index: 2, Text: "saw", Dep: "root", Head: 0},
		{Index: 3, Text: "the", Dep: "det", Head: 4},
		{Index: 4, Text: "dog", Dep: "dobj", Head: 2},
	})
}

func TestTreeText(t *testing.T) {
	if got := testTree().Text(); got != "John saw the dog" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestTreeDepth(t *testing.T) {
	tree := testTree()

	if got := tree.Depth(2); got != 0 {
		t.Errorf("expected root depth 0, got %d", got)
	}
	if got := tree.Depth(1); got != 1 {
		t.Errorf("expected depth 1, got %d", got)
	}
	if got := tree.Depth(3); got != 2 {
		t.Errorf("expected depth 2, got %d", got)
	}
}

func TestTreeChildrenOrdered(t *testing.T) {
	tree := testTree()

	children := tree.Children(2)
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].Index != 1 || children[1].Index != 4 {
		t.Errorf("expected children in index order, got %d, %d", children[0].Index, children[1].Index)
	}
}

func TestTreeDepthCappedOnCycle(t *testing.T) {
	tree := NewTree([]Token{
		{Index: 1, Text: "a", Head: 2},
		{Index: 2, Text: "b", Head: 1},
	})

	// Malformed head cycle must not loop forever.
	if got := tree.Depth(1); got <= 0 {
		t.Errorf("expected positive capped depth, got %d", got)
	}
}
