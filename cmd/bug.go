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
	"runtime"

	"github.com/spf13/cobra"
)

const bugHeader = `Please answer these questions before submitting your issue. Thanks!

#### What did you do?
If possible, provide the tree document and the command you ran.

#### What did you expect to see?

#### What did you see instead?

`

var bugCmd *cobra.Command = &cobra.Command{
	Use:   "bug",
	Short: "Print an issue template with debugging information",
	Long: `This command prints a new issue template with useful information
for further debugging.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprint(w, bugHeader)
		debugInfo(w)
	},
}

func init() {
	Root.AddCommand(bugCmd)
}

func formatInfo(w io.Writer, title string, body func()) {
	fmt.Fprintf(w, "#### %s\n\n```\n", title)
	body()
	fmt.Fprintf(w, "```\n")
}

func debugInfo(w io.Writer) {
	formatInfo(w, "Build Info", func() {
		fmt.Fprintf(w, "arbor version %v, commit %v, built %v\n",
			Ctx.Value(k("version")), Ctx.Value(k("commit")), Ctx.Value(k("date")))
	})

	formatInfo(w, "Go Info", func() {
		fmt.Fprintf(w, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	})
}
