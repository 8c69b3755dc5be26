package parse

import (
	"sync/atomic"

	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/token"
)

// maxDepthDefault is the process-wide recursion limit applied when a
// parse does not set its own. Reads during parsing are safe; concurrent
// writers race only with each other.
var maxDepthDefault atomic.Int64

func init() {
	maxDepthDefault.Store(1000)
}

// SetMaxDepth changes the process-wide default recursion limit.
func SetMaxDepth(n int) {
	maxDepthDefault.Store(int64(n))
}

func MaxDepthDefault() int {
	return int(maxDepthDefault.Load())
}

type parseOpts struct {
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

type Option func(*parseOpts)

// MaxDepth bounds nested object/array descent for this parse only,
// overriding the process default.
func MaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}

// Positions records the position of each parsed node into m.
func Positions(m map[*ir.Node]*token.Pos) Option {
	return func(o *parseOpts) { o.positions = m }
}
