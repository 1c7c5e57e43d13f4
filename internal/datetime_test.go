package internal_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/justtrackio/lakehouse-health/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "date only", input: `"2026-01-01"`, want: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: `"2026-01-01T12:34:56Z"`, want: time.Date(2026, 1, 1, 12, 34, 56, 0, time.UTC)},
		{name: "rfc3339 with offset", input: `"2026-01-01T14:34:56+02:00"`, want: time.Date(2026, 1, 1, 12, 34, 56, 0, time.UTC)},
		{name: "nano", input: `"2026-01-01T12:34:56.123456789Z"`, want: time.Date(2026, 1, 1, 12, 34, 56, 123456789, time.UTC)},
		{name: "null", input: `null`, want: time.Time{}},
		{name: "empty", input: `""`, want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d internal.DateTime

			err := json.Unmarshal([]byte(tt.input), &d)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %s want %s", d.Time, tt.want)
		})
	}
}

func TestDateTime_UnmarshalJSON_Invalid(t *testing.T) {
	var d internal.DateTime

	err := json.Unmarshal([]byte(`"01/02/2026"`), &d)
	assert.ErrorContains(t, err, "invalid datetime")

	err = json.Unmarshal([]byte(`42`), &d)
	assert.Error(t, err)
}

func TestDateTime_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(internal.NewDateTime(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-01T00:00:00Z"`, string(b))

	b, err = json.Marshal(internal.DateTime{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
