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

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/bbva/arbor/codec"
	"github.com/bbva/arbor/log"
	"github.com/bbva/arbor/tree"
)

// documentFormat returns the format of the document at path, falling back
// to the configured one when the extension says nothing.
func documentFormat(path string, conf *Config) (codec.Format, error) {
	format, err := codec.FormatFromPath(path)
	if err == nil {
		return format, nil
	}
	if conf.Format == "" {
		return "", err
	}
	return codec.ParseFormat(conf.Format)
}

// loadTree decodes the document stored at path.
func loadTree(path string, conf *Config) (*tree.Node, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "expanding %s", path)
	}

	format, err := documentFormat(path, conf)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening document")
	}
	defer f.Close()

	root, err := codec.Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	log.L().Named("load").Debugf("Loaded %s as %s", path, format)
	return root, nil
}
