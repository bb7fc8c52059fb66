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
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bbva/arbor/log"
	"github.com/bbva/arbor/visitor"
)

var statsCmd *cobra.Command = &cobra.Command{
	Use:   "stats FILE...",
	Short: "Show the size and height of trees",
	Long: `Show, for every given document, the number of nodes and leaves of the
tree and its height. Documents are loaded and measured concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	Root.AddCommand(statsCmd)
}

type treeStats struct {
	root   string
	count  visitor.Count
	height int
}

func runStats(cmd *cobra.Command, args []string) error {
	conf := rootConfig()
	logger := log.L().Named("stats")

	stats := make([]treeStats, len(args))

	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			root, err := loadTree(path, conf)
			if err != nil {
				return err
			}
			stats[i].root = root.Label()

			// Both walks only read the tree, so they can share it.
			var walks errgroup.Group
			walks.Go(func() error {
				count, err := visitor.Walk(root, visitor.NewCountVisitor())
				if err == nil {
					stats[i].count = count.(visitor.Count)
				}
				return err
			})
			walks.Go(func() error {
				height, err := visitor.Walk(root, visitor.NewHeightVisitor())
				if err == nil {
					stats[i].height = height.(int)
				}
				return err
			})
			if err := walks.Wait(); err != nil {
				return err
			}
			logger.Debugf("Measured %s: %+v", path, stats[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"File", "Root", "Nodes", "Leaves", "Height"})
	for i, s := range stats {
		table.Append([]string{
			args[i],
			s.root,
			strconv.Itoa(s.count.Nodes),
			strconv.Itoa(s.count.Leaves),
			strconv.Itoa(s.height),
		})
	}
	table.Render()
	return nil
}
