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

// Package cmd implements the arbor command line.
package cmd

import (
	"context"

	"github.com/octago/sflags/gen/gpflag"
	"github.com/spf13/cobra"

	"github.com/bbva/arbor/log"
)

// Context key type to be used when adding values to context
// as per documentation:
//
//	https://golang.org/pkg/context/#example_WithValue
type k string

var Root *cobra.Command = &cobra.Command{
	Use:   "arbor",
	Short: "Tree traversal tool",
	Long: `arbor loads tree documents (YAML, JSON or MessagePack) and walks them
either over the direct children of the root or depth-first in post-order.`,
	// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
	SilenceUsage:      true,
	PersistentPreRunE: runRoot,
}

var Ctx context.Context = context.Background()

var rootCtx context.Context

func init() {
	rootCtx = configRoot()
}

func configRoot() context.Context {

	conf := DefaultConfig()

	err := gpflag.ParseTo(conf, Root.PersistentFlags())
	if err != nil {
		log.L().Fatalf("err: %v", err)
	}
	return context.WithValue(Ctx, k("root.config"), conf)
}

func runRoot(cmd *cobra.Command, args []string) error {
	conf := rootConfig()

	if err := loadConfig(cmd.Flags(), conf); err != nil {
		return err
	}
	if err := validateConfig(conf); err != nil {
		return err
	}

	log.SetDefault(log.New(&log.LoggerOptions{
		Name:  "arbor",
		Level: log.LevelFromString(conf.Log),
	}))
	log.L().Named("config").Debugf("Running %q with %+v", cmd.CommandPath(), *conf)

	return nil
}

func rootConfig() *Config {
	return rootCtx.Value(k("root.config")).(*Config)
}
