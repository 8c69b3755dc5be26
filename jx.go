// Package jx is the user-facing facade over the JSON value model: it
// parses text or files into ir.Node trees and serializes them back in
// pretty or minimized form.
package jx

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/parse"
)

// FromBytes parses one JSON document.
func FromBytes(d []byte, opts ...parse.Option) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

func FromString(s string, opts ...parse.Option) (*ir.Node, error) {
	return parse.Parse([]byte(s), opts...)
}

// FromFile reads path whole and parses it. Read failures are I/O
// errors, distinct from parse errors.
func FromFile(path string, opts ...parse.Option) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	res, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

func ToString(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToFile serializes node and writes the result to path, followed by a
// final newline.
func ToFile(node *ir.Node, path string, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return err
	}
	buf.WriteByte('\n')
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// Lit constructs a Node from a source-embedded JSON literal, panicking
// on malformed input. Use it for constants:
//
//	var defaults = jx.Lit(`{"retries": 3, "verbose": false}`)
func Lit(s string) *ir.Node {
	node, err := parse.ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("jx.Lit: %v", err))
	}
	return node
}
