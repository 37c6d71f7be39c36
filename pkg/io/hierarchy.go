package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
)

type node struct {
	F        string  `json:"f,omitempty"`
	Data     *data   `json:"data,omitempty"`
	X0       float64 `json:"x0"`
	X1       float64 `json:"x1"`
	Y0       float64 `json:"y0"`
	Y1       float64 `json:"y1"`
	Children []node  `json:"children,omitempty"`
}

type data struct {
	F string `json:"f"`
}

func (n node) token() string {
	if n.F == "" && n.Data != nil {
		return n.Data.F
	}
	return n.F
}

// ReadHierarchy decodes a JSON hierarchy from r.
//
// Malformed JSON yields an INVALID_FORMAT error. Empty or unsafe tokens
// and violated partition invariants yield INVALID_HIERARCHY. ReadHierarchy
// does not close r.
func ReadHierarchy(r io.Reader) (*hierarchy.Node, error) {
	var in node
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode hierarchy")
	}

	root, err := build(in, "root")
	if err != nil {
		return nil, err
	}
	root.Link()
	if err := root.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidHierarchy, err, "invalid hierarchy")
	}
	return root, nil
}

func build(in node, where string) (*hierarchy.Node, error) {
	tok := in.token()
	if err := errors.ValidateToken(tok); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidHierarchy, err, "node %s", where)
	}
	n := &hierarchy.Node{
		Data: hierarchy.Data{F: tok},
		X0:   in.X0, X1: in.X1,
		Y0: in.Y0, Y1: in.Y1,
	}
	if len(in.Children) > 0 {
		n.Children = make([]*hierarchy.Node, len(in.Children))
	}
	for i, c := range in.Children {
		child, err := build(c, fmt.Sprintf("%s.children[%d]", where, i))
		if err != nil {
			return nil, err
		}
		n.Children[i] = child
	}
	return n, nil
}

// ImportHierarchy reads the JSON hierarchy file at path.
func ImportHierarchy(path string) (*hierarchy.Node, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "hierarchy file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadHierarchy(f)
}

// WriteHierarchy encodes root in the format [ReadHierarchy] accepts.
func WriteHierarchy(w io.Writer, root *hierarchy.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(flatten(root)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func flatten(n *hierarchy.Node) node {
	out := node{F: n.Data.F, X0: n.X0, X1: n.X1, Y0: n.Y0, Y1: n.Y1}
	for _, c := range n.Children {
		out.Children = append(out.Children, flatten(c))
	}
	return out
}
