package tree

import (
	"cmp"
	"slices"
	"testing"

	"github.com/pixil98/go-testutil"
)

func newIntTree(vals ...int) *Tree[int] {
	t := New(cmp.Compare[int])
	for _, v := range vals {
		t.Add(v)
	}
	return t
}

func assertInts(t *testing.T, name string, got, exp []int) {
	t.Helper()
	if !slices.Equal(got, exp) {
		t.Errorf("%s: got %v, expected %v", name, got, exp)
	}
}

func TestTree_Add(t *testing.T) {
	tests := map[string]struct {
		vals   []int
		add    int
		exp    bool
		expLen int
	}{
		"empty tree": {
			vals:   nil,
			add:    5,
			exp:    true,
			expLen: 1,
		},
		"new key": {
			vals:   []int{5, 3, 8},
			add:    4,
			exp:    true,
			expLen: 4,
		},
		"duplicate root": {
			vals:   []int{5, 3, 8},
			add:    5,
			exp:    false,
			expLen: 3,
		},
		"duplicate leaf": {
			vals:   []int{5, 3, 8},
			add:    8,
			exp:    false,
			expLen: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newIntTree(tt.vals...)

			testutil.AssertEqual(t, "added", tr.Add(tt.add), tt.exp)
			testutil.AssertEqual(t, "len", tr.Len(), tt.expLen)
			testutil.AssertEqual(t, "contains", tr.Contains(tt.add), true)
		})
	}
}

func TestTree_All(t *testing.T) {
	tr := newIntTree(50, 30, 70, 20, 40, 60, 80, 35)

	got := slices.Collect(tr.All())
	assertInts(t, "in-order", got, []int{20, 30, 35, 40, 50, 60, 70, 80})
}

func TestTree_All_StopsEarly(t *testing.T) {
	tr := newIntTree(2, 1, 3)

	var got []int
	for v := range tr.All() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assertInts(t, "visited", got, []int{1, 2})
}

func TestTree_PreOrder(t *testing.T) {
	vals := []int{50, 30, 70, 20, 40, 60, 80, 35}
	tr := newIntTree(vals...)

	pre := slices.Collect(tr.PreOrder())
	assertInts(t, "pre-order", pre, []int{50, 30, 20, 40, 35, 70, 60, 80})

	rebuilt := newIntTree(pre...)
	testutil.AssertEqual(t, "height", rebuilt.Height(), tr.Height())
	testutil.AssertEqual(t, "root", rebuilt.Root().Value(), 50)
}

func TestTree_Remove(t *testing.T) {
	tests := map[string]struct {
		vals    []int
		remove  int
		exp     bool
		expVals []int
	}{
		"missing key": {
			vals:    []int{5, 3, 8},
			remove:  7,
			exp:     false,
			expVals: []int{3, 5, 8},
		},
		"empty tree": {
			vals:    nil,
			remove:  1,
			exp:     false,
			expVals: nil,
		},
		"leaf": {
			vals:    []int{5, 3, 8},
			remove:  3,
			exp:     true,
			expVals: []int{5, 8},
		},
		"node with one child": {
			vals:    []int{5, 3, 8, 9},
			remove:  8,
			exp:     true,
			expVals: []int{3, 5, 9},
		},
		"node with two children": {
			vals:    []int{50, 30, 70, 20, 40, 60, 80, 35},
			remove:  30,
			exp:     true,
			expVals: []int{20, 35, 40, 50, 60, 70, 80},
		},
		"root with two children": {
			vals:    []int{50, 30, 70, 60, 80},
			remove:  50,
			exp:     true,
			expVals: []int{30, 60, 70, 80},
		},
		"only node": {
			vals:    []int{1},
			remove:  1,
			exp:     true,
			expVals: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newIntTree(tt.vals...)

			testutil.AssertEqual(t, "removed", tr.Remove(tt.remove), tt.exp)
			assertInts(t, "values", slices.Collect(tr.All()), tt.expVals)
			testutil.AssertEqual(t, "len", tr.Len(), len(tt.expVals))
			testutil.AssertEqual(t, "contains", tr.Contains(tt.remove), false)
		})
	}
}

func TestTree_FindNode(t *testing.T) {
	tr := newIntTree(5, 3, 8)

	n := tr.FindNode(8)
	if n == nil {
		t.Fatalf("expected node for 8, got nil")
	}
	testutil.AssertEqual(t, "value", n.Value(), 8)

	if tr.FindNode(4) != nil {
		t.Errorf("expected nil for missing key")
	}
}

func TestTree_Navigation(t *testing.T) {
	tr := newIntTree(5, 3, 8)

	root := tr.Root()
	testutil.AssertEqual(t, "root", root.Value(), 5)
	testutil.AssertEqual(t, "left", root.Left().Value(), 3)
	testutil.AssertEqual(t, "right", root.Right().Value(), 8)
	if root.Left().Left() != nil {
		t.Errorf("expected leaf to have no children")
	}
}

func TestTree_Height_Degenerate(t *testing.T) {
	tr := newIntTree(1, 2, 3, 4, 5)

	testutil.AssertEqual(t, "height", tr.Height(), 5)
	testutil.AssertEqual(t, "empty height", New(cmp.Compare[int]).Height(), 0)
}
