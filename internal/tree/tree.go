package tree

import "iter"

// Node is a single slot in a Tree. Each node owns its children exclusively.
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Tree is an unbalanced binary search tree ordered by cmp. Values that compare
// equal are the same key; a tree never holds two of them.
// Tree is not safe for concurrent use.
type Tree[T any] struct {
	root *Node[T]
	cmp  func(a, b T) int
	size int
}

// New creates an empty tree ordered by cmp.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Add inserts v. Returns false without modifying the tree if an equal key is
// already present.
func (t *Tree[T]) Add(v T) bool {
	link := &t.root
	for *link != nil {
		c := t.cmp(v, (*link).value)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return false
		}
	}

	*link = &Node[T]{value: v}
	t.size++
	return true
}

// FindNode returns the node whose value compares equal to v, or nil.
func (t *Tree[T]) FindNode(v T) *Node[T] {
	n := t.root
	for n != nil {
		c := t.cmp(v, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains reports whether a value equal to v is in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.FindNode(v) != nil
}

// Remove deletes the value equal to v. Returns false if there is none.
func (t *Tree[T]) Remove(v T) bool {
	var removed bool
	t.root, removed = t.remove(t.root, v)
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree[T]) remove(n *Node[T], v T) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	c := t.cmp(v, n.value)
	switch {
	case c < 0:
		n.left, removed = t.remove(n.left, v)
		return n, removed
	case c > 0:
		n.right, removed = t.remove(n.right, v)
		return n, removed
	}

	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	// Two children: take over the in-order successor's value, then drop the
	// successor from the right subtree.
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	n.value = succ.value
	n.right, _ = t.remove(n.right, succ.value)
	return n, true
}

// All returns an iterator over the values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*Node[T]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}

			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// PreOrder returns an iterator visiting each node before its children.
// Adding the values to an empty tree in this order rebuilds the same shape.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		stack := []*Node[T]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.value) {
				return
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}
