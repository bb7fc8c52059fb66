/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package tree implements an ordered, owning tree of labeled nodes together
// with two traversals over it: a shallow one over the direct children of a
// node and a depth-first one that emits every node of a subtree in
// post-order without recursing on the call stack.
//
// Iterators hold plain pointers into the tree. Adding a node to a subtree
// while an iterator over it is alive is detected on the next step, which
// terminates the iteration with ErrConcurrentModification.
package tree

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNilNode is returned when adding a nil child.
	ErrNilNode = errors.New("nil node")

	// ErrAttached is returned when adding a child that is already owned by
	// another node.
	ErrAttached = errors.New("node already has a parent")

	// ErrCycle is returned when adding a node under itself or under one of
	// its descendants.
	ErrCycle = errors.New("node would become its own ancestor")

	// ErrConcurrentModification is the cause reported by an iterator whose
	// subtree was modified while it was in use.
	ErrConcurrentModification = errors.New("tree modified during traversal")
)

// Node is one element of the tree. It owns its children, which are kept in
// insertion order.
type Node struct {
	label    string
	parent   *Node
	children []*Node

	// mods counts every Add performed on this node or on any node of its
	// subtree. Iterators snapshot it to detect mutations.
	mods uint64
}

// New returns a leaf node with the given label.
func New(label string) *Node {
	return &Node{label: label}
}

// Label returns the label the node was created with.
func (n *Node) Label() string {
	return n.label
}

// Parent returns the node owning n, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// HasChildren reports whether n has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i-th direct child. It panics if i is out of range.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Add appends child as the last direct child of n, transferring ownership
// of child and its whole subtree.
func (n *Node) Add(child *Node) error {
	if child == nil {
		return errors.Wrapf(ErrNilNode, "adding to %q", n.label)
	}
	if child.parent != nil {
		return errors.Wrapf(ErrAttached, "adding %q to %q (owned by %q)", child.label, n.label, child.parent.label)
	}
	for a := n; a != nil; a = a.parent {
		if a == child {
			return errors.Wrapf(ErrCycle, "adding %q to %q", child.label, n.label)
		}
	}

	n.children = append(n.children, child)
	child.parent = n
	for a := n; a != nil; a = a.parent {
		a.mods++
	}
	return nil
}

// Children returns an iterator over the direct children of n.
func (n *Node) Children() *ShallowIterator {
	return newShallowIterator(n)
}

// DepthFirst returns a post-order iterator over the subtree rooted at n,
// n included.
func (n *Node) DepthFirst() *DepthFirstIterator {
	return newDepthFirstIterator(n)
}

// Analyze returns the number of nodes in the subtree rooted at n and its
// height, counted in levels (a leaf has height 1).
func (n *Node) Analyze() (count, height int) {
	// Nodes are emitted after their subtree, so the height of every
	// junction is known once its last child has been seen.
	heights := make(map[*Node]int)
	it := n.DepthFirst()
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		count++
		h := 1
		for _, c := range node.children {
			if heights[c]+1 > h {
				h = heights[c] + 1
			}
			delete(heights, c)
		}
		heights[node] = h
	}
	return count, heights[n]
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%s)[%d]", n.label, len(n.children))
}
