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
	"io"

	"github.com/spf13/cobra"

	"github.com/bbva/arbor/log"
	"github.com/bbva/arbor/tree"
)

var walkCmd *cobra.Command = &cobra.Command{
	Use:   "walk FILE",
	Short: "Print every node of a tree in depth-first post-order",
	Long: `Print the labels of every node of the tree, one per line. Leaves are
printed as soon as they are reached and every other node right after its
whole subtree, so the root comes last.`,
	Args: cobra.ExactArgs(1),
	RunE: runWalk,
}

var childrenCmd *cobra.Command = &cobra.Command{
	Use:   "children FILE",
	Short: "Print the direct children of the root of a tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runChildren,
}

func init() {
	Root.AddCommand(walkCmd)
	Root.AddCommand(childrenCmd)
}

func runWalk(cmd *cobra.Command, args []string) error {
	root, err := loadTree(args[0], rootConfig())
	if err != nil {
		return err
	}
	n, err := printLabels(cmd.OutOrStdout(), root.DepthFirst())
	log.L().Named("walk").Debugf("Walked %d nodes from %q", n, root.Label())
	return err
}

func runChildren(cmd *cobra.Command, args []string) error {
	root, err := loadTree(args[0], rootConfig())
	if err != nil {
		return err
	}
	_, err = printLabels(cmd.OutOrStdout(), root.Children())
	return err
}

// printLabels writes the label of every node produced by it, one per line,
// and returns how many were written.
func printLabels(w io.Writer, it tree.Iterator) (int, error) {
	count := 0
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		if _, err := fmt.Fprintln(w, n.Label()); err != nil {
			return count, err
		}
		count++
	}
	return count, it.Err()
}
