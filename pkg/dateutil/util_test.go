package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_StartOfDay(t *testing.T) {
	at := time.Date(2024, 3, 14, 23, 59, 59, 0, time.Local)
	require.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.Local), StartOfDay(at))
}

func Test_SameDay(t *testing.T) {
	morning := time.Date(2024, 3, 14, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, 3, 14, 23, 59, 59, 0, time.Local)
	nextDay := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	require.True(t, SameDay(morning, night))
	require.False(t, SameDay(night, nextDay))
}
