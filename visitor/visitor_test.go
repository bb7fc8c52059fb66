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

package visitor

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bbva/arbor/testutils/fixture"
	"github.com/bbva/arbor/tree"
)

func TestCountVisitor(t *testing.T) {

	testCases := []struct {
		root     *tree.Node
		expected Count
	}{
		{root: tree.New("root"), expected: Count{Nodes: 1, Leaves: 1}},
		{root: fixture.Example(), expected: Count{Nodes: 9, Leaves: 4}},
		{root: fixture.Chain(10), expected: Count{Nodes: 10, Leaves: 1}},
	}

	for i, c := range testCases {
		result, err := Walk(c.root, NewCountVisitor())
		require.NoErrorf(t, err, "Unexpected error in test case %d", i)
		require.Equalf(t, c.expected, result, "Wrong count in test case %d", i)
	}
}

func TestHeightVisitor(t *testing.T) {

	testCases := []struct {
		root     *tree.Node
		expected int
	}{
		{root: tree.New("root"), expected: 1},
		{root: fixture.Example(), expected: 5},
		{root: fixture.Example().Child(0), expected: 2},
		{root: fixture.Chain(100000), expected: 100000},
	}

	for i, c := range testCases {
		result, err := Walk(c.root, NewHeightVisitor())
		require.NoErrorf(t, err, "Unexpected error in test case %d", i)
		require.Equalf(t, c.expected, result, "Wrong height in test case %d", i)
	}
}

func TestLabelsVisitor(t *testing.T) {
	visitor := NewLabelsVisitor()
	_, err := Walk(fixture.Example(), visitor)
	require.NoError(t, err)
	require.Equal(t, fixture.ExamplePostOrder, visitor.Result())
}

// childLabels checks that junctions get their children's results in
// insertion order.
type childLabels struct{}

func (childLabels) VisitLeaf(n *tree.Node) interface{} {
	return n.Label()
}

func (childLabels) VisitJunction(n *tree.Node, childResults []interface{}) interface{} {
	parts := make([]string, 0, len(childResults))
	for _, r := range childResults {
		parts = append(parts, r.(string))
	}
	return n.Label() + "(" + strings.Join(parts, ",") + ")"
}

func TestWalkOrdersChildResults(t *testing.T) {
	result, err := Walk(fixture.Example(), childLabels{})
	require.NoError(t, err)
	require.Equal(t, "root(a0(a0b0,a0b1),a1(a1b0,a1b1(a1b1c0(a1b1c0d0))))", result)
}

// mutating adds a node to the tree the first time it visits a leaf.
type mutating struct {
	root *tree.Node
	done bool
}

func (m *mutating) VisitLeaf(n *tree.Node) interface{} {
	if !m.done {
		m.done = true
		_ = m.root.Add(tree.New("late"))
	}
	return nil
}

func (m *mutating) VisitJunction(n *tree.Node, childResults []interface{}) interface{} {
	return nil
}

func TestWalkFailsOnModification(t *testing.T) {
	root := fixture.Example()
	_, err := Walk(root, &mutating{root: root})
	require.Error(t, err)
	require.Equal(t, tree.ErrConcurrentModification, errors.Cause(err))
}

func TestPrintVisitor(t *testing.T) {

	expected := `root
├── a0
│   ├── a0b0
│   └── a0b1
└── a1
    ├── a1b0
    └── a1b1
        └── a1b1c0
            └── a1b1c0d0
`

	visitor := NewPrintVisitor()
	_, err := Walk(fixture.Example(), visitor)
	require.NoError(t, err)
	require.Equal(t, expected, visitor.Result())

	visitor = NewPrintVisitor()
	_, err = Walk(fixture.Example().Child(1), visitor)
	require.NoError(t, err)
	require.Equal(t, "a1\n├── a1b0\n└── a1b1\n    └── a1b1c0\n        └── a1b1c0d0\n", visitor.Result())

	visitor = NewPrintVisitor()
	visitor.Leaf = func(a ...interface{}) string { return "<" + a[0].(string) + ">" }
	visitor.Junction = func(a ...interface{}) string { return "[" + a[0].(string) + "]" }
	_, err = Walk(fixture.Example().Child(0), visitor)
	require.NoError(t, err)
	require.Equal(t, "[a0]\n├── <a0b0>\n└── <a0b1>\n", visitor.Result())

	require.Equal(t, "", NewPrintVisitor().Result())
}
