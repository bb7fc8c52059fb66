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

// DepthFirstIterator emits every node of a subtree exactly once, in
// post-order: leaves as soon as they are reached, junctions once their whole
// subtree has been emitted, and the start node last.
//
// The walk keeps two stacks moving in lockstep: the cursors over the children
// of every open junction, deepest on top, and the junctions those cursors
// belong to. A junction is emitted when its cursor runs dry.
type DepthFirstIterator struct {
	root      *Node
	mods      uint64
	iters     []*ShallowIterator
	junctions []*Node
	err       error
}

func newDepthFirstIterator(root *Node) *DepthFirstIterator {
	return &DepthFirstIterator{
		root:      root,
		mods:      root.mods,
		iters:     []*ShallowIterator{root.Children()},
		junctions: []*Node{root},
	}
}

// Next returns the next node in post-order.
func (it *DepthFirstIterator) Next() (*Node, bool) {
	if len(it.iters) == 0 {
		return nil, false
	}
	if it.root.mods != it.mods {
		it.fail(errors.Wrapf(ErrConcurrentModification, "depth-first walk from %q", it.root.label))
		return nil, false
	}

	for len(it.iters) > 0 {
		top := len(it.iters) - 1
		child, ok := it.iters[top].Next()
		if ok {
			if !child.HasChildren() {
				return child, true
			}
			it.iters = append(it.iters, child.Children())
			it.junctions = append(it.junctions, child)
			continue
		}
		if err := it.iters[top].Err(); err != nil {
			it.fail(err)
			return nil, false
		}

		junction := it.junctions[top]
		it.iters[top], it.junctions[top] = nil, nil
		it.iters, it.junctions = it.iters[:top], it.junctions[:top]
		return junction, true
	}
	return nil, false
}

// Err returns ErrConcurrentModification (wrapped) if the subtree was
// modified while walking it, nil otherwise.
func (it *DepthFirstIterator) Err() error {
	return it.err
}

// Depth returns the number of junctions currently open, the start node
// included. It is zero once the walk is over.
func (it *DepthFirstIterator) Depth() int {
	return len(it.junctions)
}

func (it *DepthFirstIterator) fail(err error) {
	it.err = err
	it.iters, it.junctions = nil, nil
}
