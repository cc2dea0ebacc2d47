package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// FirstParagraph returns the trimmed text before the first newline.
func FirstParagraph(s string) string {
	first, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(first)
}

var (
	mdImageRegex    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	mdHeadingRegex  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdEmphasisRegex = regexp.MustCompile("[*_`]+")
)

// StripMarkdown removes common markdown syntax, leaving plain text
// suitable for a search query. It is intentionally rough, listing
// descriptions only use links, emphasis and headings.
func StripMarkdown(s string) string {
	s = mdImageRegex.ReplaceAllString(s, "")
	s = mdLinkRegex.ReplaceAllString(s, "$1")
	s = mdHeadingRegex.ReplaceAllString(s, "")
	s = mdEmphasisRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
