package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node's subtree, consistent with
// Equal within one process. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		f := n.Float64
		// Compare puts -0 == 0 and all NaNs together
		if f == 0 {
			f = 0
		} else if math.IsNaN(f) {
			f = math.NaN()
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var b [8]byte
		for i, f := range n.Fields {
			h.WriteString(f.String)
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
