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

// Package codec reads and writes tree documents. A document is the nested
// label/children shape of a tree, stored as YAML, JSON or MessagePack.
package codec

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	msgpack "github.com/hashicorp/go-msgpack/codec"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bbva/arbor/log"
	"github.com/bbva/arbor/tree"
	"github.com/bbva/arbor/visitor"
)

// Format names a document encoding.
type Format string

const (
	YAML    Format = "yaml"
	JSON    Format = "json"
	Msgpack Format = "msgpack"
)

var (
	// ErrUnknownFormat is returned for encodings other than YAML, JSON and
	// MessagePack.
	ErrUnknownFormat = errors.New("unknown document format")

	// ErrEmptyLabel is returned when a document node has no label.
	ErrEmptyLabel = errors.New("empty label")

	// ErrTrailingData is returned when a JSON document is followed by
	// anything but whitespace.
	ErrTrailingData = errors.New("trailing data after document")
)

var handler *msgpack.MsgpackHandle

func init() {
	handler = new(msgpack.MsgpackHandle)
}

// Document is the serialized form of a tree node.
type Document struct {
	Label    string      `yaml:"label" json:"label" codec:"label"`
	Children []*Document `yaml:"children,omitempty" json:"children,omitempty" codec:"children,omitempty"`
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case YAML, JSON, Msgpack:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// FormatFromPath infers the Format of a file from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".msgpack", ".mpk":
		return Msgpack, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "extension of %q", path)
	}
}

// Decode reads a document in the given format and builds the tree it
// describes.
func Decode(r io.Reader, format Format) (*tree.Node, error) {
	var doc Document
	var err error

	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case JSON:
		err = decodeJSON(r, &doc)
	case Msgpack:
		err = msgpack.NewDecoder(r, handler).Decode(&doc)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s document", format)
	}

	root, err := FromDocument(&doc)
	if err != nil {
		return nil, err
	}
	log.L().Named("codec").Debugf("Decoded %s document rooted at %q", format, root.Label())
	return root, nil
}

// Encode writes the subtree rooted at n as a document in the given format.
func Encode(w io.Writer, n *tree.Node, format Format) error {
	doc, err := ToDocument(n)
	if err != nil {
		return err
	}

	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case Msgpack:
		err = msgpack.NewEncoder(w, handler).Encode(doc)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	return errors.Wrapf(err, "encoding %s document", format)
}

// decodeJSON reads exactly one JSON value from r.
func decodeJSON(r io.Reader, doc *Document) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return ErrTrailingData
	}
	return nil
}

// FromDocument builds the tree described by doc.
func FromDocument(doc *Document) (*tree.Node, error) {
	if doc == nil || doc.Label == "" {
		return nil, errors.Wrap(ErrEmptyLabel, "document root")
	}

	type pending struct {
		doc  *Document
		node *tree.Node
	}

	root := tree.New(doc.Label)
	stack := []pending{{doc, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i, c := range p.doc.Children {
			if c == nil || c.Label == "" {
				return nil, errors.Wrapf(ErrEmptyLabel, "child %d of %q", i, p.doc.Label)
			}
			n := tree.New(c.Label)
			if err := p.node.Add(n); err != nil {
				return nil, err
			}
			stack = append(stack, pending{c, n})
		}
	}
	return root, nil
}

// ToDocument returns the document describing the subtree rooted at n.
func ToDocument(n *tree.Node) (*Document, error) {
	result, err := visitor.Walk(n, documentVisitor{})
	if err != nil {
		return nil, errors.Wrap(err, "building document")
	}
	return result.(*Document), nil
}

type documentVisitor struct{}

func (documentVisitor) VisitLeaf(n *tree.Node) interface{} {
	return &Document{Label: n.Label()}
}

func (documentVisitor) VisitJunction(n *tree.Node, childResults []interface{}) interface{} {
	doc := &Document{Label: n.Label(), Children: make([]*Document, 0, len(childResults))}
	for _, r := range childResults {
		doc.Children = append(doc.Children, r.(*Document))
	}
	return doc
}
