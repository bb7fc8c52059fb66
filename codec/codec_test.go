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

package codec

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bbva/arbor/testutils/fixture"
	"github.com/bbva/arbor/tree"
)

const exampleYAML = `
label: root
children:
  - label: a0
    children:
      - label: a0b0
      - label: a0b1
  - label: a1
    children:
      - label: a1b0
      - label: a1b1
        children:
          - label: a1b1c0
            children:
              - label: a1b1c0d0
`

const exampleJSON = `{"label": "root", "children": [
  {"label": "a0", "children": [{"label": "a0b0"}, {"label": "a0b1"}]},
  {"label": "a1", "children": [
    {"label": "a1b0"},
    {"label": "a1b1", "children": [{"label": "a1b1c0", "children": [{"label": "a1b1c0d0"}]}]}
  ]}
]}`

func postOrder(t *testing.T, n *tree.Node) []string {
	nodes, err := tree.Collect(n.DepthFirst())
	require.NoError(t, err)
	return fixture.Labels(nodes)
}

func TestDecode(t *testing.T) {

	testCases := []struct {
		input  string
		format Format
	}{
		{input: exampleYAML, format: YAML},
		{input: exampleJSON, format: JSON},
	}

	for i, c := range testCases {
		root, err := Decode(strings.NewReader(c.input), c.format)
		require.NoErrorf(t, err, "Unexpected error in test case %d", i)
		require.Equalf(t, fixture.ExamplePostOrder, postOrder(t, root), "Wrong tree in test case %d", i)
	}

	root, err := Decode(strings.NewReader(`{"label": "a\/b", "children": [{"label": "c\u0064"}]}`+"\n"), JSON)
	require.NoError(t, err)
	require.Equal(t, "a/b", root.Label())
	require.Equal(t, "cd", root.Child(0).Label())
}

func TestDecodeErrors(t *testing.T) {

	testCases := []struct {
		input       string
		format      Format
		expectedErr error
	}{
		{input: exampleYAML, format: "xml", expectedErr: ErrUnknownFormat},
		{input: `children: [{label: a}]`, format: YAML, expectedErr: ErrEmptyLabel},
		{input: `{"label": "root", "children": [{"label": ""}]}`, format: JSON, expectedErr: ErrEmptyLabel},
		{input: `{"label": "root", "children": [null]}`, format: JSON, expectedErr: ErrEmptyLabel},
		{input: `{"label": "root"} trailing`, format: JSON, expectedErr: ErrTrailingData},
		{input: `{"label": "root"} {"label": "other"}`, format: JSON, expectedErr: ErrTrailingData},
	}

	for i, c := range testCases {
		_, err := Decode(strings.NewReader(c.input), c.format)
		require.Equalf(t, c.expectedErr, errors.Cause(err), "Unexpected error in test case %d", i)
	}

	_, err := Decode(strings.NewReader("label: [unclosed"), YAML)
	require.Error(t, err)

	// JSON is not read as YAML: unquoted scalars are not strings.
	_, err = Decode(strings.NewReader(`{"label": 1e3}`), JSON)
	require.Error(t, err)
	_, err = Decode(strings.NewReader(`label: root`), JSON)
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {

	for _, format := range []Format{YAML, JSON, Msgpack} {
		var buf bytes.Buffer
		require.NoErrorf(t, Encode(&buf, fixture.Example(), format), "Unexpected error encoding %s", format)

		root, err := Decode(&buf, format)
		require.NoErrorf(t, err, "Unexpected error decoding %s", format)
		require.Equalf(t, fixture.ExamplePostOrder, postOrder(t, root), "Wrong tree after %s round trip", format)

		kids, err := tree.Collect(root.Children())
		require.NoError(t, err)
		require.Equal(t, fixture.ExampleChildren, fixture.Labels(kids))
	}
}

func TestRoundTripDeepChain(t *testing.T) {
	const depth = 500

	for _, format := range []Format{YAML, Msgpack} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, fixture.Chain(depth), format))

		root, err := Decode(&buf, format)
		require.NoErrorf(t, err, "Unexpected error decoding %s", format)

		count, height := root.Analyze()
		require.Equal(t, depth, count)
		require.Equal(t, depth, height)
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, fixture.Example().Child(0), YAML))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "label: a0\nchildren:\n"))
	require.Contains(t, out, "- label: a0b0")
	require.True(t, strings.Index(out, "- label: a0b0") < strings.Index(out, "- label: a0b1"))

	require.Equal(t, ErrUnknownFormat, errors.Cause(Encode(&buf, fixture.Example(), "xml")))
}

func TestDocumentsAreBuiltWithoutRecursion(t *testing.T) {
	const depth = 100000

	doc := &Document{Label: "n0"}
	last := doc
	for i := 1; i < depth; i++ {
		next := &Document{Label: fmt.Sprintf("n%d", i)}
		last.Children = []*Document{next}
		last = next
	}

	root, err := FromDocument(doc)
	require.NoError(t, err)
	count, height := root.Analyze()
	require.Equal(t, depth, count)
	require.Equal(t, depth, height)

	back, err := ToDocument(root)
	require.NoError(t, err)
	require.Equal(t, "n0", back.Label)
	require.Equal(t, "n1", back.Children[0].Label)
}

func TestFormats(t *testing.T) {

	testCases := []struct {
		path     string
		expected Format
		err      error
	}{
		{path: "tree.yaml", expected: YAML},
		{path: "dir/tree.YML", expected: YAML},
		{path: "tree.json", expected: JSON},
		{path: "tree.msgpack", expected: Msgpack},
		{path: "tree.mpk", expected: Msgpack},
		{path: "tree.txt", err: ErrUnknownFormat},
		{path: "tree", err: ErrUnknownFormat},
	}

	for i, c := range testCases {
		format, err := FormatFromPath(c.path)
		require.Equalf(t, c.err, errors.Cause(err), "Unexpected error in test case %d", i)
		require.Equalf(t, c.expected, format, "Wrong format in test case %d", i)
	}

	format, err := ParseFormat(" YML ")
	require.NoError(t, err)
	require.Equal(t, YAML, format)

	_, err = ParseFormat("toml")
	require.Equal(t, ErrUnknownFormat, errors.Cause(err))
}
