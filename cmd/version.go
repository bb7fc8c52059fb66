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
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd *cobra.Command = &cobra.Command{
	Use:   "version",
	Short: "Print the arbor version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "arbor version %s (commit %s, built %s)\n",
			Ctx.Value(k("version")), Ctx.Value(k("commit")), Ctx.Value(k("date")))
	},
}

func init() {
	Root.AddCommand(versionCmd)
}

// SetReleaseInfo records the build information injected by the linker.
func SetReleaseInfo(version, commit, date string) {
	Ctx = context.WithValue(Ctx, k("version"), version)
	Ctx = context.WithValue(Ctx, k("commit"), commit)
	Ctx = context.WithValue(Ctx, k("date"), date)
}
