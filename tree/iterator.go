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

package tree

import (
	"github.com/pkg/errors"
)

// Iterator is the single-pass cursor shape shared by ShallowIterator and
// DepthFirstIterator.
type Iterator interface {
	// Next returns the next node and true, or nil and false once the
	// iteration is over. Calling Next after that keeps returning false.
	Next() (*Node, bool)

	// Err returns the reason the iteration stopped early, if any.
	Err() error
}

// ShallowIterator walks the direct children of a node in insertion order.
type ShallowIterator struct {
	node *Node
	pos  int
	mods uint64
	err  error
}

func newShallowIterator(n *Node) *ShallowIterator {
	return &ShallowIterator{node: n, mods: n.mods}
}

// Next returns the next direct child.
func (it *ShallowIterator) Next() (*Node, bool) {
	if it.node == nil {
		return nil, false
	}
	if it.node.mods != it.mods {
		it.err = errors.Wrapf(ErrConcurrentModification, "children of %q", it.node.label)
		it.node = nil
		return nil, false
	}
	if it.pos >= len(it.node.children) {
		it.node = nil
		return nil, false
	}
	child := it.node.children[it.pos]
	it.pos++
	return child, true
}

// Err returns ErrConcurrentModification (wrapped) if the node was modified
// while iterating, nil otherwise.
func (it *ShallowIterator) Err() error {
	return it.err
}

// Collect drains it into a slice. The nodes gathered before a failure are
// returned along with the error.
func Collect(it Iterator) ([]*Node, error) {
	var nodes []*Node
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		nodes = append(nodes, n)
	}
	return nodes, it.Err()
}
