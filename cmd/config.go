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

	"github.com/imdario/mergo"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// defaultConfigFile is read when present and no --config is given.
const defaultConfigFile = "~/.arbor.yaml"

type Config struct {
	// Log level.
	Log string `desc:"Set log level to off, error, warn, info, debug or trace"`

	// Path to a configuration file. Values given as flags take precedence.
	Config string `desc:"Path to a YAML, JSON or TOML configuration file (default ~/.arbor.yaml)"`

	// Document format used when it cannot be inferred from the file name.
	Format string `desc:"Document format when not implied by the file extension: yaml, json or msgpack"`

	// Color mode of the print command.
	Color string `desc:"Colorize printed trees: auto, always or never"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:   "error",
		Color: "auto",
	}
}

// loadConfig resolves conf from, by order of precedence, the flags
// explicitly set, the ARBOR_* environment, the configuration file and the
// defaults.
func loadConfig(flags *pflag.FlagSet, conf *Config) error {
	resolved := &Config{}
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}
	if changed("log") {
		resolved.Log = conf.Log
	}
	if changed("config") {
		resolved.Config = conf.Config
	}
	if changed("format") {
		resolved.Format = conf.Format
	}
	if changed("color") {
		resolved.Color = conf.Color
	}

	v := viper.New()
	v.SetEnvPrefix("arbor")
	for _, key := range []string{"log", "config", "format", "color"} {
		if err := v.BindEnv(key); err != nil {
			return errors.Wrapf(err, "binding %s to the environment", key)
		}
	}
	if resolved.Config == "" {
		resolved.Config = v.GetString("config")
	}

	path, explicit := resolved.Config, resolved.Config != ""
	if !explicit {
		path = defaultConfigFile
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return errors.Wrapf(err, "expanding %s", path)
	}
	if _, err := os.Stat(path); err == nil || explicit {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", path)
		}
	}

	fromFile := &Config{}
	if err := v.Unmarshal(fromFile); err != nil {
		return errors.Wrap(err, "decoding configuration")
	}

	if err := mergo.Merge(resolved, fromFile); err != nil {
		return errors.Wrap(err, "merging configuration")
	}
	if err := mergo.Merge(resolved, DefaultConfig()); err != nil {
		return errors.Wrap(err, "merging default configuration")
	}

	*conf = *resolved
	return nil
}
