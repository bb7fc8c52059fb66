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

import "github.com/bbva/arbor/tree"

// Count holds the number of nodes and leaves of a subtree.
type Count struct {
	Nodes, Leaves int
}

// CountVisitor computes a Count for every subtree.
type CountVisitor struct{}

func NewCountVisitor() *CountVisitor {
	return &CountVisitor{}
}

func (v *CountVisitor) VisitLeaf(n *tree.Node) interface{} {
	return Count{Nodes: 1, Leaves: 1}
}

func (v *CountVisitor) VisitJunction(n *tree.Node, childResults []interface{}) interface{} {
	count := Count{Nodes: 1}
	for _, r := range childResults {
		c := r.(Count)
		count.Nodes += c.Nodes
		count.Leaves += c.Leaves
	}
	return count
}

// HeightVisitor computes the height of every subtree, in levels.
type HeightVisitor struct{}

func NewHeightVisitor() *HeightVisitor {
	return &HeightVisitor{}
}

func (v *HeightVisitor) VisitLeaf(n *tree.Node) interface{} {
	return 1
}

func (v *HeightVisitor) VisitJunction(n *tree.Node, childResults []interface{}) interface{} {
	height := 0
	for _, r := range childResults {
		if h := r.(int); h > height {
			height = h
		}
	}
	return height + 1
}

// LabelsVisitor records the labels of the visited nodes in visiting order.
type LabelsVisitor struct {
	labels []string
}

func NewLabelsVisitor() *LabelsVisitor {
	return &LabelsVisitor{labels: make([]string, 0)}
}

func (v *LabelsVisitor) VisitLeaf(n *tree.Node) interface{} {
	v.labels = append(v.labels, n.Label())
	return nil
}

func (v *LabelsVisitor) VisitJunction(n *tree.Node, childResults []interface{}) interface{} {
	v.labels = append(v.labels, n.Label())
	return nil
}

func (v LabelsVisitor) Result() []string {
	return v.labels
}
