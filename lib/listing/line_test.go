package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	testCases := []struct {
		line     string
		expected Kind
	}{
		{line: "## Thai", expected: KindCuisineHeader},
		{line: "### Thai Corner, 123 Main St, Arlington, (555) 555-0100", expected: KindLocationHeader},
		{line: "* delivery: true", expected: KindField},
		{line: "", expected: KindBlank},
		{line: "   \t", expected: KindBlank},
		{line: "# Restaurants", expected: KindProse},
		{line: "A solid weeknight pick.", expected: KindProse},
		// markers require the trailing space
		{line: "##Thai", expected: KindProse},
		{line: "*bullet without space", expected: KindProse},
		{line: "####", expected: KindProse},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, ClassifyLine(tc.line), "line: %q", tc.line)
	}
}
