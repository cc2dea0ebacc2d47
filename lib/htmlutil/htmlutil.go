package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		} else {
			// newlines and tabs still separate words
			newStr.WriteRune(' ')
		}
	}
	return newStr.String()
}

// CleanText strips non-printable runes, collapses inner whitespace and
// trims the ends. Scraped link text tends to need all three.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = innerWhitespace.ReplaceAllString(s, " ")
	s = strings.Trim(s, " \t\n")
	return s
}

type Anchor struct {
	Name string
	Href string
	// HasImage reports an <img> descendant, thumbnail links wrap
	// their image this way.
	HasImage bool
}

// GetAnchors extracts the href and cleaned inner text of every node in
// the selection, in document order. Nodes without an href are skipped.
func GetAnchors(sel *goquery.Selection) []Anchor {
	var anchors []Anchor
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}
		if href == "" {
			continue
		}
		anchors = append(anchors, Anchor{
			Name:     CleanText(GetText(n)),
			Href:     href,
			HasImage: hasElement(n, "img"),
		})
	}
	return anchors
}

func hasElement(node *html.Node, tag string) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == tag {
			return true
		}
		if hasElement(child, tag) {
			return true
		}
	}
	return false
}
