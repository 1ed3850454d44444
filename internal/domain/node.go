package domain

import (
	"fmt"
	"slices"

	"i18ncheck/pkg/keypath"
)

// Kind tags a Node as a mapping or a leaf.
type Kind int

const (
	KindLeaf Kind = iota
	KindMapping
)

// Entry is one (key, node) pair of a mapping.
type Entry struct {
	Key  string
	Node Node
}

// Node is one level of a key tree. Leaf values are not retained: only the
// fact that a path terminates matters.
type Node struct {
	Kind    Kind
	Entries []Entry
}

// Leaf returns a terminal node.
func Leaf() Node { return Node{Kind: KindLeaf} }

// Mapping returns a mapping node holding entries in the given order.
func Mapping(entries ...Entry) Node {
	if entries == nil {
		entries = []Entry{}
	}
	return Node{Kind: KindMapping, Entries: entries}
}

// NodeFromValue converts a decoded document value into a Node. Maps become
// mappings (entries sorted by key); anything else, including nil, is a leaf.
// Non-string keys, as YAML allows, are rendered with fmt; two keys that
// render the same (1 and "1") are rejected rather than merged.
func NodeFromValue(v any) (Node, error) {
	return nodeFromValue(v, "")
}

func nodeFromValue(v any, path string) (Node, error) {
	switch m := v.(type) {
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, child := range m {
			key := fmt.Sprint(k)
			if _, dup := converted[key]; dup {
				return Node{}, fmt.Errorf("duplicate key %q", keypath.Join(path, key))
			}
			converted[key] = child
		}
		return nodeFromValue(converted, path)
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			child, err := nodeFromValue(m[k], keypath.Join(path, k))
			if err != nil {
				return Node{}, err
			}
			entries = append(entries, Entry{Key: k, Node: child})
		}
		return Mapping(entries...), nil
	default:
		return Leaf(), nil
	}
}

// Flatten returns the set of dot-joined root-to-leaf paths below n, each
// prefixed with prefix. A leaf yields {prefix} unchanged, so a bare leaf
// flattened from the empty prefix yields {""}.
func Flatten(n Node, prefix string) KeySet {
	keys := NewKeySet()
	flattenInto(keys, n, prefix)
	return keys
}

func flattenInto(keys KeySet, n Node, prefix string) {
	if n.Kind != KindMapping {
		keys.Add(prefix)
		return
	}
	for _, e := range n.Entries {
		flattenInto(keys, e.Node, keypath.Join(prefix, e.Key))
	}
}
