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
	"github.com/pkg/errors"

	"github.com/bbva/arbor/codec"
	"github.com/bbva/arbor/log"
)

var (
	errUnknownLogLevel  = errors.New("unknown log level")
	errUnknownColorMode = errors.New("unknown color mode")
)

// validateConfig checks that every configuration value is one the commands
// know how to handle.
func validateConfig(conf *Config) error {
	if log.LevelFromString(conf.Log) == log.NotSet {
		return errors.Wrapf(errUnknownLogLevel, "%q", conf.Log)
	}

	if conf.Format != "" {
		if _, err := codec.ParseFormat(conf.Format); err != nil {
			return err
		}
	}

	switch conf.Color {
	case "auto", "always", "never":
	default:
		return errors.Wrapf(errUnknownColorMode, "%q", conf.Color)
	}

	return nil
}
