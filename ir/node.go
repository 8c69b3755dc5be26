package ir

import (
	"fmt"
	"maps"
	"slices"
	"sort"
)

// Node is a JSON value. Type selects the active variant; the other
// variant fields are meaningful only when Type says so. The zero value
// is null.
//
// Object nodes keep Fields and Values as parallel slices with Fields
// sorted by key and keys unique.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: f,
	}
}

func FromInt(v int64) *Node {
	return FromFloat(float64(v))
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		v := m[key]
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = key
		res.Fields[i] = &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Values[i] = v
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object from ordered key/value pairs, keeping
// the keys sorted. A repeated key overwrites its predecessor.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func (n *Node) Is(t Type) bool {
	return n.Type == t
}

func (n *Node) AsString() (string, error) {
	if n.Type != StringType {
		return "", fmt.Errorf("%w: want String, have %s", ErrType, n.Type)
	}
	return n.String, nil
}

func (n *Node) AsNumber() (float64, error) {
	if n.Type != NumberType {
		return 0, fmt.Errorf("%w: want Number, have %s", ErrType, n.Type)
	}
	return n.Float64, nil
}

func (n *Node) AsBool() (bool, error) {
	if n.Type != BoolType {
		return false, fmt.Errorf("%w: want Bool, have %s", ErrType, n.Type)
	}
	return n.Bool, nil
}

// search locates field in n's sorted Fields. The second result
// indicates presence; on absence the first result is the insertion
// point. field is compared directly, no key node is allocated.
func (n *Node) search(field string) (int, bool) {
	i := sort.Search(len(n.Fields), func(i int) bool {
		return n.Fields[i].String >= field
	})
	if i < len(n.Fields) && n.Fields[i].String == field {
		return i, true
	}
	return i, false
}

// Get returns the value under field, or nil when n is not an object or
// the field is absent.
func Get(n *Node, field string) *Node {
	return n.Get(field)
}

func (n *Node) Get(field string) *Node {
	if n.Type != ObjectType {
		return nil
	}
	i, ok := n.search(field)
	if !ok {
		return nil
	}
	return n.Values[i]
}

// At is strict field access: it never vivifies and fails on a missing
// key or a non-object receiver.
func (n *Node) At(field string) (*Node, error) {
	if n.Type != ObjectType {
		return nil, fmt.Errorf("%w: want Object, have %s", ErrType, n.Type)
	}
	i, ok := n.search(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, field)
	}
	return n.Values[i], nil
}

func (n *Node) Contains(field string) bool {
	if n.Type != ObjectType {
		return false
	}
	_, ok := n.search(field)
	return ok
}

// ValueOr returns the value under field or fallback when absent. A
// single lookup either way.
func (n *Node) ValueOr(field string, fallback *Node) *Node {
	if n.Type != ObjectType {
		return fallback
	}
	i, ok := n.search(field)
	if !ok {
		return fallback
	}
	return n.Values[i]
}

// Entry returns the value under field, vivifying as needed: a null
// receiver becomes an empty object, and an absent field is inserted as
// null. It panics when n is neither null nor an object.
func (n *Node) Entry(field string) *Node {
	if n.Type == NullType {
		n.Type = ObjectType
		n.Fields = nil
		n.Values = nil
	}
	if n.Type != ObjectType {
		panic(fmt.Sprintf("ir: Entry on %s node", n.Type))
	}
	i, ok := n.search(field)
	if ok {
		return n.Values[i]
	}
	return n.insert(i, field, Null())
}

// Set inserts or overwrites field with v, keeping Fields sorted.
// Like Entry it vivifies a null receiver.
func (n *Node) Set(field string, v *Node) *Node {
	if n.Type == NullType {
		n.Type = ObjectType
		n.Fields = nil
		n.Values = nil
	}
	if n.Type != ObjectType {
		panic(fmt.Sprintf("ir: Set on %s node", n.Type))
	}
	i, ok := n.search(field)
	if ok {
		v.Parent = n
		v.ParentIndex = i
		v.ParentField = field
		n.Values[i] = v
		return v
	}
	return n.insert(i, field, v)
}

func (n *Node) insert(i int, field string, v *Node) *Node {
	key := &Node{
		Parent:      n,
		ParentField: field,
		Type:        StringType,
		String:      field,
	}
	v.Parent = n
	v.ParentField = field
	n.Fields = slices.Insert(n.Fields, i, key)
	n.Values = slices.Insert(n.Values, i, v)
	for j := i; j < len(n.Fields); j++ {
		n.Fields[j].ParentIndex = j
		n.Values[j].ParentIndex = j
	}
	return v
}

// Delete removes field, reporting whether it was present.
func (n *Node) Delete(field string) bool {
	if n.Type != ObjectType {
		return false
	}
	i, ok := n.search(field)
	if !ok {
		return false
	}
	n.Fields = slices.Delete(n.Fields, i, i+1)
	n.Values = slices.Delete(n.Values, i, i+1)
	for j := i; j < len(n.Fields); j++ {
		n.Fields[j].ParentIndex = j
		n.Values[j].ParentIndex = j
	}
	return true
}

// Append adds v to an array node, vivifying a null receiver into an
// empty array first.
func (n *Node) Append(v *Node) *Node {
	if n.Type == NullType {
		n.Type = ArrayType
		n.Values = nil
	}
	if n.Type != ArrayType {
		panic(fmt.Sprintf("ir: Append on %s node", n.Type))
	}
	v.Parent = n
	v.ParentIndex = len(n.Values)
	n.Values = append(n.Values, v)
	return v
}

// SetIndex overwrites the array element at i.
func (n *Node) SetIndex(i int, v *Node) (*Node, error) {
	if n.Type != ArrayType {
		return nil, fmt.Errorf("%w: want Array, have %s", ErrType, n.Type)
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrMissingKey, i, len(n.Values))
	}
	v.Parent = n
	v.ParentIndex = i
	n.Values[i] = v
	return v, nil
}

func (n *Node) Index(i int) (*Node, error) {
	if n.Type != ArrayType {
		return nil, fmt.Errorf("%w: want Array, have %s", ErrType, n.Type)
	}
	if i < 0 || i >= len(n.Values) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrMissingKey, i, len(n.Values))
	}
	return n.Values[i], nil
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.Type = n.Type
	dst.String = n.String
	dst.Bool = n.Bool
	dst.Float64 = n.Float64
	if n.Fields != nil {
		dst.Fields = make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			df := f.CloneTo(&Node{})
			df.Parent = dst
			dst.Fields[i] = df
		}
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dv := v.CloneTo(&Node{})
			dv.Parent = dst
			dst.Values[i] = dv
		}
	}
	return dst
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
