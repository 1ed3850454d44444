package domain

import "fmt"

// Document maps a language code to its key tree.
type Document map[string]Node

// DocumentFromValues builds a Document from a decoded top-level mapping.
func DocumentFromValues(raw map[string]any) (Document, error) {
	doc := make(Document, len(raw))
	for code, v := range raw {
		n, err := NodeFromValue(v)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", code, err)
		}
		doc[code] = n
	}
	return doc, nil
}

// Missing returns the codes absent from d, preserving the order of codes.
func (d Document) Missing(codes []string) []string {
	var missing []string
	for _, code := range codes {
		if _, ok := d[code]; !ok {
			missing = append(missing, code)
		}
	}
	return missing
}
