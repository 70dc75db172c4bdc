package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	require.Equal(t, "2025-06-01", DateString(time.Date(2025, 5, 31, 22, 0, 0, 0, loc)))
	require.Equal(t, "2025-05-31", DateString(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)))
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC), WindowStart(now, 30*24*time.Hour))
	require.Equal(t, now, WindowStart(now, 0))
}
