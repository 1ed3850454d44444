package domain

// Diff holds the keys one language has that the other lacks.
type Diff struct {
	Language string
	Only     []string
}

// Result is the outcome of comparing the required language blocks.
type Result struct {
	// Missing lists required codes absent from the document.
	Missing []string
	// Diffs has one entry per compared language, in the order the codes were required.
	Diffs []Diff
	// KeyCount is the size of the first language's key set.
	KeyCount int
}

// Matched reports whether every required block is present and the key sets
// are identical.
func (r Result) Matched() bool {
	if len(r.Missing) > 0 {
		return false
	}
	for _, d := range r.Diffs {
		if len(d.Only) > 0 {
			return false
		}
	}
	return true
}
