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

import "iter"

// All returns the post-order sequence of the subtree rooted at n, for use
// with range. It panics if the subtree is modified during the loop.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		drain(n.DepthFirst(), yield)
	}
}

// Kids returns the direct children of n, for use with range. It panics if n
// is modified during the loop.
func (n *Node) Kids() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		drain(n.Children(), yield)
	}
}

func drain(it Iterator, yield func(*Node) bool) {
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		if !yield(n) {
			return
		}
	}
	if err := it.Err(); err != nil {
		panic(err)
	}
}
