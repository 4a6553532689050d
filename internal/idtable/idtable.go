// Package idtable holds the read-only identifier catalogue consumed
// by dynamic autocompletion resolvers: a nested
// category -> id -> optional-label tree, populated out of process by a
// separate resource-pack ingestion tool and loaded here as plain JSON.
package idtable

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Node is one entry in the tree: either a leaf (Label set, possibly
// empty meaning "no label"; or List for block-state value lists) or an
// interior map (Children).
type Node struct {
	// Leaf holds true when this node is a terminal value rather than
	// a nested category map.
	Leaf     bool
	Label    *string
	List     []string
	Children map[string]*Node
}

func leaf(label *string) *Node   { return &Node{Leaf: true, Label: label} }
func leafList(l []string) *Node  { return &Node{Leaf: true, List: l} }
func interior() *Node            { return &Node{Children: map[string]*Node{}} }

// IdTable is the immutable (after Load/Merge) catalogue. The zero
// value is an empty table ready to merge into.
type IdTable struct {
	root   *Node
	logger *zap.Logger
}

// New returns an empty table. logger may be nil, in which case a
// no-op logger is used.
func New(logger *zap.Logger) *IdTable {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IdTable{root: interior(), logger: logger}
}

// Get walks path through the tree and returns the node found there, or
// nil if any segment is missing or traverses through a leaf.
func (t *IdTable) Get(path []string) *Node {
	n := t.root
	for _, seg := range path {
		if n == nil || n.Leaf || n.Children == nil {
			return nil
		}
		n = n.Children[seg]
	}
	return n
}

// Load decodes JSON bytes (with //- and /*...*/-style comments
// stripped first, per the permissive default mode) into a fresh table.
// strict disables comment stripping and rejects any JSON extension.
func Load(data []byte, strict bool) (*IdTable, error) {
	if !strict {
		data = stripComments(data)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("idtable: decode: %w", err)
	}
	t := New(nil)
	t.root = decode(raw)
	return t, nil
}

// LoadFile reads path and loads it via Load.
func LoadFile(path string, strict bool) (*IdTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("idtable: read %s: %w", path, err)
	}
	return Load(data, strict)
}

func decode(v any) *Node {
	switch val := v.(type) {
	case nil:
		return leaf(nil)
	case string:
		s := val
		return leaf(&s)
	case []any:
		list := make([]string, 0, len(val))
		for _, e := range val {
			if s, ok := e.(string); ok {
				list = append(list, s)
			} else {
				list = append(list, fmt.Sprint(e))
			}
		}
		return leafList(list)
	case map[string]any:
		n := interior()
		for k, child := range val {
			n.Children[k] = decode(child)
		}
		return n
	default:
		s := fmt.Sprint(val)
		return leaf(&s)
	}
}

func encode(n *Node) any {
	if n == nil {
		return nil
	}
	if n.Leaf {
		if n.List != nil {
			out := make([]any, len(n.List))
			for i, s := range n.List {
				out[i] = s
			}
			return out
		}
		if n.Label == nil {
			return nil
		}
		return *n.Label
	}
	out := map[string]any{}
	for k, child := range n.Children {
		out[k] = encode(child)
	}
	return out
}

// Dump serialises the table back to JSON bytes.
func (t *IdTable) Dump() ([]byte, error) {
	return json.MarshalIndent(encode(t.root), "", "  ")
}

// DumpFile serialises the table and writes it to path.
func (t *IdTable) DumpFile(path string) error {
	data, err := t.Dump()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MergeFrom merges other into t: leaf entries are overwritten
// last-writer-wins, interior maps are merged key by key (deep merge).
// Associativity of this rule is what makes P5's round-trip property
// hold across repeated merges.
func (t *IdTable) MergeFrom(others ...*IdTable) {
	for _, o := range others {
		if o == nil {
			continue
		}
		t.root = mergeNode(t.root, o.root, t.logger)
	}
}

func mergeNode(dst, src *Node, logger *zap.Logger) *Node {
	if src == nil {
		return dst
	}
	if dst == nil || dst.Leaf || src.Leaf {
		if logger != nil {
			logger.Debug("idtable: leaf overwrite during merge")
		}
		return src
	}
	for k, sv := range src.Children {
		dst.Children[k] = mergeNode(dst.Children[k], sv, logger)
	}
	return dst
}
