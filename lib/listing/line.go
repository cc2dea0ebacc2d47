package listing

import "strings"

// Kind is the structural role of a single listing line.
type Kind int

const (
	KindProse Kind = iota
	KindBlank
	KindCuisineHeader
	KindLocationHeader
	KindField
)

const (
	cuisineMarker  = "## "
	locationMarker = "### "
	fieldMarker    = "* "
)

// ClassifyLine tags one raw line with its structural role. Single-hash
// lines ("# Restaurants") carry no marker and classify as prose, the
// parser absorbs them like any other stray text.
func ClassifyLine(line string) Kind {
	switch {
	case strings.HasPrefix(line, locationMarker):
		return KindLocationHeader
	case strings.HasPrefix(line, cuisineMarker):
		return KindCuisineHeader
	case strings.HasPrefix(line, fieldMarker):
		return KindField
	case strings.TrimSpace(line) == "":
		return KindBlank
	default:
		return KindProse
	}
}
