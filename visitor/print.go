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
	"bufio"
	"bytes"
	"io"

	"github.com/bbva/arbor/tree"
)

const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	blank      = "    "
)

// PrintVisitor renders a subtree as indented text, one node per line, in
// the usual box drawing layout. Leaf and Junction, when set, decorate the
// labels of the corresponding nodes.
type PrintVisitor struct {
	Leaf, Junction func(a ...interface{}) string

	last *span
}

// span is a pre-order run of nodes that can be concatenated in O(1).
type span struct {
	head, tail *entry
}

type entry struct {
	node *tree.Node
	next *entry
}

func NewPrintVisitor() *PrintVisitor {
	return &PrintVisitor{}
}

func (v *PrintVisitor) VisitLeaf(n *tree.Node) interface{} {
	e := &entry{node: n}
	v.last = &span{head: e, tail: e}
	return v.last
}

func (v *PrintVisitor) VisitJunction(n *tree.Node, childResults []interface{}) interface{} {
	e := &entry{node: n}
	s := &span{head: e, tail: e}
	for _, r := range childResults {
		child := r.(*span)
		s.tail.next = child.head
		s.tail = child.tail
	}
	v.last = s
	return s
}

// WriteTo writes the rendering of the last visited subtree to w.
func (v *PrintVisitor) WriteTo(w io.Writer) (int64, error) {
	if v.last == nil {
		return 0, nil
	}

	bw := bufio.NewWriter(w)
	var written int64
	var path []*tree.Node

	for e := v.last.head; e != nil; e = e.next {
		n := e.node
		for len(path) > 0 && path[len(path)-1] != n.Parent() {
			path = path[:len(path)-1]
		}

		var line bytes.Buffer
		if len(path) > 0 {
			for _, a := range path[1:] {
				if isLast(a) {
					line.WriteString(blank)
				} else {
					line.WriteString(pipe)
				}
			}
			if isLast(n) {
				line.WriteString(lastBranch)
			} else {
				line.WriteString(branch)
			}
		}
		line.WriteString(v.decorate(n))
		line.WriteByte('\n')

		c, err := bw.Write(line.Bytes())
		written += int64(c)
		if err != nil {
			return written, err
		}
		path = append(path, n)
	}

	return written, bw.Flush()
}

func (v *PrintVisitor) Result() string {
	var buf bytes.Buffer
	_, _ = v.WriteTo(&buf)
	return buf.String()
}

func (v *PrintVisitor) decorate(n *tree.Node) string {
	switch {
	case n.HasChildren() && v.Junction != nil:
		return v.Junction(n.Label())
	case !n.HasChildren() && v.Leaf != nil:
		return v.Leaf(n.Label())
	default:
		return n.Label()
	}
}

func isLast(n *tree.Node) bool {
	p := n.Parent()
	return p == nil || p.Child(p.Len()-1) == n
}
