package jx

import (
	"bytes"
	"fmt"

	"github.com/jx-format/go-jx/debug"
	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/parse"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

func wireBytes(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Patch applies the RFC 6902 patch document to doc, returning the
// patched tree. Both trees are bridged through their minimized
// encodings.
func Patch(doc, patchDoc *ir.Node) (*ir.Node, error) {
	pd, err := wireBytes(patchDoc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("bad patch: %w", err)
	}
	d, err := wireBytes(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %s applied to %s\n", pd, d)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("patch apply: %w", err)
	}
	return parse.Parse(out)
}

// MergePatch applies the RFC 7386 merge patch to doc.
func MergePatch(doc, patchDoc *ir.Node) (*ir.Node, error) {
	d, err := wireBytes(doc)
	if err != nil {
		return nil, err
	}
	pd, err := wireBytes(patchDoc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, pd)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return parse.Parse(out)
}
