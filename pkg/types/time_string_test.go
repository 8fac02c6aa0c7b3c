package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 15, 9, 5, 59, 0, time.UTC))

	assert.Equal(t, "09:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("18:30")
	require.NoError(t, err)
	assert.Equal(t, "18:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("6 PM")
	assert.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	morning := MustTimeString("08:00")
	evening := MustTimeString("18:00")

	assert.True(t, morning.IsBefore(evening))
	assert.True(t, evening.IsAfter(morning))

	// Равные времена не "до" и не "после" друг друга
	assert.False(t, morning.IsBefore(morning))
	assert.False(t, morning.IsAfter(morning))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC)))
	assert.Equal(t, "19:00", ts.String())
}
