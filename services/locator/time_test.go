package locator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveLocalTime(t *testing.T) {
	resolved, err := resolveLocalTime("2020-01-01T10:00:00", "2020-01-01T15:00:00")
	require.NoError(t, err)

	_, offset := resolved.Zone()
	require.Equal(t, -5*60*60, offset)

	utc, err := time.Parse(wpTimeLayout, "2020-01-01T15:00:00")
	require.NoError(t, err)
	require.True(t, resolved.Equal(utc), "resolved instant must equal the utc input")
}

func TestResolveLocalTimeWithoutGmt(t *testing.T) {
	resolved, err := resolveLocalTime("2020-01-01T10:00:00", "")
	require.NoError(t, err)
	require.Equal(t, "2020-01-01T10:00:00Z", resolved.Format(time.RFC3339))
}

func TestResolveLocalTimeMalformed(t *testing.T) {
	_, err := resolveLocalTime("yesterday", "2020-01-01T15:00:00")
	require.Error(t, err)

	_, err = resolveLocalTime("2020-01-01T10:00:00", "later")
	require.Error(t, err)
}
