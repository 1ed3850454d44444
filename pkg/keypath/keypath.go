package keypath

// Sep separates segments of a flattened key.
const Sep = "."

// Join appends key to prefix, omitting the separator when prefix is empty.
func Join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Sep + key
}

