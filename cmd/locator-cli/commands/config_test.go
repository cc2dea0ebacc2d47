package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchGateFor(t *testing.T) {
	// manual mode prompts an operator, no cooldown between prompts
	require.Nil(t, searchGateFor(Config{ManualSearch: true, SearchPeriod: 55}))
	require.NotNil(t, searchGateFor(Config{SearchPeriod: 55}))
}

func TestHostOf(t *testing.T) {
	require.Equal(t, "example.com", hostOf("https://example.com/blog"))
	require.Equal(t, "example.com", hostOf("example.com"))
}
