package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "below floor", value: -12.5, expected: 0},
		{name: "at floor", value: 0, expected: 0},
		{name: "inside", value: 42, expected: 42},
		{name: "at ceiling", value: 100, expected: 100},
		{name: "above ceiling", value: 105, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clamp(tt.value, 0, 100))
		})
	}
}
