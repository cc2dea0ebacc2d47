package blog

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnrecognizedURL marks a URL that does not look like a wordpress
// permalink, so no post slug can be derived from it.
var ErrUnrecognizedURL = fmt.Errorf("url does not look like a wordpress permalink")

// ErrNoPosts marks a wp-json payload that decoded fine but matched
// no post at all.
var ErrNoPosts = fmt.Errorf("no posts in payload")

type RenderedField struct {
	Rendered string `json:"rendered"`
}

// Post carries the subset of the wp-json post payload the pipeline
// acts on. Timestamps stay as the raw strings the server sent, in
// local and GMT flavors, since wp-json does not label their zone.
type Post struct {
	ID          int64         `json:"id"`
	Date        string        `json:"date"`
	DateGMT     string        `json:"date_gmt"`
	Modified    string        `json:"modified"`
	ModifiedGMT string        `json:"modified_gmt"`
	Slug        string        `json:"slug"`
	Link        string        `json:"link"`
	Title       RenderedField `json:"title"`
	Content     RenderedField `json:"content"`
}

// ParsePosts decodes a raw wp-json posts payload. The endpoint
// answers queries with an array even when a single slug matched.
func ParsePosts(raw []byte) ([]Post, error) {
	var posts []Post
	err := json.Unmarshal(raw, &posts)
	if err != nil {
		return nil, fmt.Errorf("decode wp-json posts: %w", err)
	}
	return posts, nil
}

const permalinkMarker = "index.php/"

// SlugFromURL pulls the post slug out of a wordpress permalink of
// the form https://host/index.php/<year>/<month>/<slug>/. URLs
// without the index.php marker return ErrUnrecognizedURL.
func SlugFromURL(blogUrl string) (string, error) {
	parsed, err := url.Parse(blogUrl)
	if err != nil {
		return "", err
	}

	_, rest, found := strings.Cut(parsed.Path, permalinkMarker)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrUnrecognizedURL, blogUrl)
	}

	segments := strings.Split(strings.Trim(rest, "/"), "/")
	slug := segments[len(segments)-1]
	if slug == "" {
		return "", fmt.Errorf("%w: %s", ErrUnrecognizedURL, blogUrl)
	}
	return slug, nil
}
