// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	node, err := parse.ParseString(`[1, 2, 3]`, parse.MaxDepth(64))
//
// The parser is a recursive descent over the input bytes with an
// explicit cursor and a bounded recursion depth. Every error carries a
// line/column annotation pointing at the offending byte.
//
// # Related Packages
//
//   - github.com/jx-format/go-jx/ir - IR representation
//   - github.com/jx-format/go-jx/encode - Encode IR to text
//   - github.com/jx-format/go-jx/token - Lexical scanning
package parse
