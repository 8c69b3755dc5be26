// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A JSON document is a tree of Node values. Node is a tagged union: the
// Type field selects which of null, bool, number, string, array, or
// object the node currently is, and the variant fields (Bool, Float64,
// String, Values, Fields) carry the content for that state. Numbers are
// always float64; JSON has one number type and so does the IR.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromFloat(4.2)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// FromAny converts arbitrary native values (maps, slices, numbers)
// with a fixed category priority; see its documentation.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i]; the two slices always have the same length, Fields are
// string typed, sorted by key, and keys are unique. Set overwrites an
// existing key. Entry and Set vivify a null receiver into an empty
// object; At never does and fails on absent keys.
//
// # Ownership
//
// A node owns its subtree: children live exactly as long as their
// parent, there is no sharing and no cycles. Parent, ParentIndex and
// ParentField are backlinks maintained by the mutation helpers.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone a tree or synchronize
// externally to share across goroutines.
package ir
