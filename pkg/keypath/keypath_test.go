package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		prefix string
		key    string
		want   string
	}{
		{prefix: "", key: "a", want: "a"},
		{prefix: "a", key: "b", want: "a.b"},
		{prefix: "a.b", key: "c", want: "a.b.c"},
		{prefix: "", key: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Join(tt.prefix, tt.key), "Join(%q, %q)", tt.prefix, tt.key)
	}
}
