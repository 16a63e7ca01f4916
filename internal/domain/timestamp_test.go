package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	valid := []string{
		"2024-03-01T10:00:00.1Z",
		"2024-03-01T10:00:00.123Z",
		"2024-03-01T10:00:00.123456789+05:30",
	}
	for _, s := range valid {
		_, err := ParseTimestamp(s)
		assert.NoError(t, err, s)
	}

	invalid := []string{
		"2024-03-01T10:00:00Z",
		"2024-03-01T10:00:00+01:00",
		"2024-03-01 10:00:00.000Z",
		"2024-03-01",
		"",
	}
	for _, s := range invalid {
		_, err := ParseTimestamp(s)
		assert.Error(t, err, s)
	}
}

func TestTimestamp_MarshalAlwaysWritesFraction(t *testing.T) {
	ts := Timestamp(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-01T10:00:00.000000000Z"`, string(data))

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Time().Equal(ts.Time()))
}

func TestTimestamp_MarshalKeepsNanoseconds(t *testing.T) {
	ts := Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 123456789, time.UTC))
	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-01T00:00:00.123456789Z"`, string(data))

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ts.Time(), back.Time())
}

func TestTimestamp_TimePtrNil(t *testing.T) {
	var ts *Timestamp
	assert.Nil(t, ts.TimePtr())
}
