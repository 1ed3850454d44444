package domain

import "slices"

// KeySet is an unordered set of flattened key paths.
type KeySet map[string]struct{}

func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s KeySet) Add(key string) { s[key] = struct{}{} }

func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Len() int { return len(s) }

// Minus returns the keys of s that are absent from other, sorted ascending.
func (s KeySet) Minus(other KeySet) []string {
	var out []string
	for k := range s {
		if !other.Has(k) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// Sorted returns every key in ascending order.
func (s KeySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
