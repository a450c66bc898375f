package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	cases := map[string]time.Time{
		`"2025-01-15T10:30:00Z"`:        time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		`"2025-01-15T12:30:00+02:00"`:   time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		`"2025-01-15T10:30:00"`:         time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		`"2025-01-15T10:30:00.250"`:     time.Date(2025, 1, 15, 10, 30, 0, 250000000, time.UTC),
		`"2025-01-15 10:30:00"`:         time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		`"2025-01-14T22:00:00.5-05:00"`: time.Date(2025, 1, 15, 3, 0, 0, 500000000, time.UTC),
	}

	for input, want := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(input), &ts), input)
		assert.True(t, want.Equal(ts.Time), "%s: got %s", input, ts.Time)
		assert.Equal(t, time.UTC, ts.Location(), input)
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
}

func TestTimestampInRequest(t *testing.T) {
	var req CreateMealRequest
	require.NoError(t, json.Unmarshal([]byte(`{"total_calories": 10, "captured_at": null}`), &req))
	assert.Nil(t, req.CapturedAt)

	require.NoError(t, json.Unmarshal([]byte(`{"total_calories": 10, "captured_at": "2025-03-01T08:00:00"}`), &req))
	require.NotNil(t, req.CapturedAt)
	assert.Equal(t, "2025-03-01T08:00:00Z", req.CapturedAt.Format(time.RFC3339))
}
