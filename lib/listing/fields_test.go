package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitField(t *testing.T) {
	testCases := []struct {
		line  string
		key   string
		value string
	}{
		{line: "* delivery: true", key: "delivery", value: "true"},
		{line: "*  spaced :  out ", key: "spaced", value: "out"},
		// only the first colon splits
		{line: "* hours: 11:30-22:00", key: "hours", value: "11:30-22:00"},
		// colonless lines degrade to an empty value instead of failing
		{line: "* just a note", key: "just a note", value: ""},
	}

	for _, tc := range testCases {
		key, value := SplitField(tc.line)
		require.Equal(t, tc.key, key, "line: %q", tc.line)
		require.Equal(t, tc.value, value, "line: %q", tc.line)
	}
}

func TestInterpretField(t *testing.T) {
	testCases := []struct {
		key      string
		value    string
		expected any
	}{
		{key: "cuisines", value: "Thai, Vietnamese", expected: []string{"Thai", "Vietnamese"}},
		{key: "cuisines", value: "Thai", expected: []string{"Thai"}},
		{key: "delivery", value: "True", expected: true},
		{key: "delivery", value: "FALSE", expected: false},
		{key: "delivery", value: "maybe", expected: "maybe"},
		// no numeric coercion
		{key: "seats", value: "42", expected: "42"},
		// key case is preserved and not special-cased
		{key: "Cuisines", value: "Thai, Lao", expected: "Thai, Lao"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, InterpretField(tc.key, tc.value), "key: %q value: %q", tc.key, tc.value)
	}
}
