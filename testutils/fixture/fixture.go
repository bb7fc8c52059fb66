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

// Package fixture builds the trees shared by tests and by the example
// command.
package fixture

import (
	"fmt"

	"github.com/bbva/arbor/tree"
)

var (
	// ExampleChildren is the shallow traversal of the Example root.
	ExampleChildren = []string{"a0", "a1"}

	// ExamplePostOrder is the depth-first traversal of the Example root.
	ExamplePostOrder = []string{
		"a0b0", "a0b1", "a0",
		"a1b0", "a1b1c0d0", "a1b1c0", "a1b1", "a1",
		"root",
	}
)

// Example returns the tree
//
//	root
//	├── a0
//	│   ├── a0b0
//	│   └── a0b1
//	└── a1
//	    ├── a1b0
//	    └── a1b1
//	        └── a1b1c0
//	            └── a1b1c0d0
func Example() *tree.Node {
	return Build("root",
		Build("a0", Leaf("a0b0"), Leaf("a0b1")),
		Build("a1",
			Leaf("a1b0"),
			Build("a1b1",
				Build("a1b1c0", Leaf("a1b1c0d0")),
			),
		),
	)
}

// Leaf returns a node without children.
func Leaf(label string) *tree.Node {
	return tree.New(label)
}

// Build returns a node labeled label owning the given children. It panics
// on an invalid tree since it is only meant for literal trees.
func Build(label string, children ...*tree.Node) *tree.Node {
	n := tree.New(label)
	for _, c := range children {
		if err := n.Add(c); err != nil {
			panic(err)
		}
	}
	return n
}

// Chain returns a degenerate tree of the given depth where every node has a
// single child. Labels go from n0 (the root) to n<depth-1> (the only leaf).
func Chain(depth int) *tree.Node {
	root := tree.New("n0")
	last := root
	for i := 1; i < depth; i++ {
		next := tree.New(fmt.Sprintf("n%d", i))
		if err := last.Add(next); err != nil {
			panic(err)
		}
		last = next
	}
	return root
}

// Labels maps nodes to their labels.
func Labels(nodes []*tree.Node) []string {
	labels := make([]string, 0, len(nodes))
	for _, n := range nodes {
		labels = append(labels, n.Label())
	}
	return labels
}
