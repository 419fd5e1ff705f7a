package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type label string

func (s label) Equals(other label) bool {
	return string(s) == string(other)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        label
		b        label
		expected bool
	}{
		{name: "equal strings", a: "hello", b: "hello", expected: true},
		{name: "different strings", a: "hello", b: "world", expected: false},
		{name: "empty strings", a: "", b: "", expected: true},
		{name: "one empty string", a: "hello", b: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals[label](tt.a, tt.b))
		})
	}
}
