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

// Package visitor folds a tree bottom-up. Walk drives a PostOrderVisitor
// with the depth-first iterator, so the result of every child is known when
// its parent is visited and no recursion happens on the call stack.
package visitor

import (
	"github.com/pkg/errors"

	"github.com/bbva/arbor/tree"
)

type PostOrderVisitor interface {
	VisitLeaf(n *tree.Node) interface{}
	VisitJunction(n *tree.Node, childResults []interface{}) interface{}
}

// Walk visits every node of the subtree rooted at root in post-order and
// returns the result computed for root. Junctions receive the results of
// their children in insertion order.
func Walk(root *tree.Node, visitor PostOrderVisitor) (interface{}, error) {
	var results []interface{}

	it := root.DepthFirst()
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		if !n.HasChildren() {
			results = append(results, visitor.VisitLeaf(n))
			continue
		}
		// The subtree of n has just been emitted as a contiguous run, so
		// the results of its children sit on top of the stack.
		start := len(results) - n.Len()
		childResults := make([]interface{}, n.Len())
		copy(childResults, results[start:])
		results = append(results[:start], visitor.VisitJunction(n, childResults))
	}
	if err := it.Err(); err != nil {
		return nil, errors.Wrap(err, "visiting tree")
	}

	return results[0], nil
}
