// Package encode encodes IR nodes to JSON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, w)
//
//	// Minimized output
//	err := encode.Encode(node, w, encode.EncodeFormat(encode.Minimized))
//
// # Related Packages
//
//   - github.com/jx-format/go-jx/ir - IR representation
//   - github.com/jx-format/go-jx/parse - Parse text to IR
package encode
