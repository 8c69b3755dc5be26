package jx

import (
	"testing"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"
)

func TestFromYAML(t *testing.T) {
	node, err := FromYAML([]byte("name: jx\ncount: 3\nnested:\n  ok: true\nxs:\n  - 1\n  - two\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Lit(`{"count": 3, "name": "jx", "nested": {"ok": true}, "xs": [1, "two"]}`)
	if !ir.Equal(want, node) {
		t.Errorf("got %s", encode.MustString(node))
	}
	if _, err := FromYAML([]byte("xs: [1, 2")); err == nil {
		t.Error("expected error")
	}
}
