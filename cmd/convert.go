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
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bbva/arbor/codec"
	"github.com/bbva/arbor/log"
)

func newConvertCommand() *cobra.Command {
	var to, output string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode a tree document in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := codec.ParseFormat(to)
			if err != nil {
				return err
			}

			root, err := loadTree(args[0], rootConfig())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				path, err := homedir.Expand(output)
				if err != nil {
					return errors.Wrapf(err, "expanding %s", output)
				}
				f, err := os.Create(path)
				if err != nil {
					return errors.Wrap(err, "creating output")
				}
				defer f.Close()
				w = f
			}

			if err := codec.Encode(w, root, format); err != nil {
				return err
			}
			log.L().Named("convert").Infof("Converted %s to %s", args[0], format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "json", "Target format: yaml, json or msgpack")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file instead of stdout")

	return cmd
}

func init() {
	Root.AddCommand(newConvertCommand())
}
