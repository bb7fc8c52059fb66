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
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bbva/arbor/visitor"
)

var printCmd *cobra.Command = &cobra.Command{
	Use:   "print FILE",
	Short: "Print a tree as indented text",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func init() {
	Root.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	conf := rootConfig()

	root, err := loadTree(args[0], conf)
	if err != nil {
		return err
	}

	v := visitor.NewPrintVisitor()
	if useColor(conf.Color, cmd.OutOrStdout()) {
		junction := color.New(color.FgBlue, color.Bold)
		junction.EnableColor()
		leaf := color.New(color.FgGreen)
		leaf.EnableColor()
		v.Junction, v.Leaf = junction.SprintFunc(), leaf.SprintFunc()
	}

	if _, err := visitor.Walk(root, v); err != nil {
		return err
	}
	_, err = v.WriteTo(cmd.OutOrStdout())
	return err
}

// useColor resolves the color mode against the output the command writes
// to. In auto mode only terminals get colors.
func useColor(mode string, out interface{}) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
