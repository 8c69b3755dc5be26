package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path renders the node's location from the root, "$"-rooted, with
// object steps as .field (quoted when the name contains path syntax)
// and array steps as [i].
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	switch n.Parent.Type {
	case ObjectType:
		f := n.ParentField
		prefix := n.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return n.Parent.Path() + "[" + strconv.Itoa(n.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// Path is one parsed step chain of a "$"-rooted path.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			buf.WriteString("." + *x.Field)
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(p string, at *Path) error {
	if p == "" {
		return nil
	}
	next := &Path{}
	switch p[0] {
	case '.':
		rest := p[1:]
		if rest == "" {
			return fmt.Errorf("path ends with '.'")
		}
		if rest[0] == '\'' {
			f, n, err := unquoteField(rest)
			if err != nil {
				return err
			}
			next.Field = &f
			at.Next = next
			return parseFrag(rest[n:], next)
		}
		end := strings.IndexAny(rest, ".[")
		if end == -1 {
			end = len(rest)
		}
		if end == 0 {
			return fmt.Errorf("empty field in path")
		}
		f := rest[:end]
		next.Field = &f
		at.Next = next
		return parseFrag(rest[end:], next)
	case '[':
		end := strings.IndexByte(p, ']')
		if end == -1 {
			return fmt.Errorf("unterminated index in path")
		}
		i, err := strconv.Atoi(p[1:end])
		if err != nil {
			return fmt.Errorf("bad index %q in path", p[1:end])
		}
		next.Index = &i
		at.Next = next
		return parseFrag(p[end+1:], next)
	default:
		return fmt.Errorf("unexpected %q in path", p[0])
	}
}

func unquoteField(p string) (string, int, error) {
	// p[0] == '\''
	var b strings.Builder
	i := 1
	for i < len(p) {
		c := p[i]
		if c == '\\' && i+1 < len(p) && p[i+1] == '\'' {
			b.WriteByte('\'')
			i += 2
			continue
		}
		if c == '\'' {
			return b.String(), i + 1, nil
		}
		b.WriteByte(c)
		i++
	}
	return "", 0, fmt.Errorf("unterminated quoted field in path")
}

// GetPath navigates from n along path, failing with ErrMissingKey or
// ErrType where a step cannot be taken.
func (n *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	cur := n
	for x := p.Next; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			cur, err = cur.At(*x.Field)
		case x.Index != nil:
			cur, err = cur.Index(*x.Index)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
