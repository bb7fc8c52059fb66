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

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bbva/arbor/tree"
)

var exampleCmd *cobra.Command = &cobra.Command{
	Use:   "example",
	Short: "Walk a built-in example tree",
	Args:  cobra.NoArgs,
	RunE:  runExample,
}

func init() {
	Root.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, args []string) error {
	root, err := exampleTree()
	if err != nil {
		return err
	}

	shallow, err := tree.Collect(root.Children())
	if err != nil {
		return err
	}
	deep, err := tree.Collect(root.DepthFirst())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "children:    %s\n", joinLabels(shallow))
	fmt.Fprintf(cmd.OutOrStdout(), "depth-first: %s\n", joinLabels(deep))
	return nil
}

// exampleTree builds
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
func exampleTree() (*tree.Node, error) {
	edges := [][2]string{
		{"root", "a0"}, {"a0", "a0b0"}, {"a0", "a0b1"},
		{"root", "a1"}, {"a1", "a1b0"}, {"a1", "a1b1"},
		{"a1b1", "a1b1c0"}, {"a1b1c0", "a1b1c0d0"},
	}

	nodes := map[string]*tree.Node{"root": tree.New("root")}
	for _, e := range edges {
		child := tree.New(e[1])
		if err := nodes[e[0]].Add(child); err != nil {
			return nil, err
		}
		nodes[e[1]] = child
	}
	return nodes["root"], nil
}

func joinLabels(nodes []*tree.Node) string {
	labels := make([]string, 0, len(nodes))
	for _, n := range nodes {
		labels = append(labels, n.Label())
	}
	return strings.Join(labels, " ")
}
