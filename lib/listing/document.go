package listing

import (
	"encoding/json"
	"time"
)

// Cuisine is a section of the master listing, one per "## " header.
type Cuisine struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	// listing-file-defined custom fields ("* key: value" lines),
	// serialized as top-level keys of the JSON object
	Extra map[string]any `json:"-"`
}

var cuisineKeys = []string{"name", "slug", "description"}

func (c Cuisine) MarshalJSON() ([]byte, error) {
	type alias Cuisine
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *Cuisine) UnmarshalJSON(data []byte) error {
	type alias Cuisine
	var a alias
	extra, err := unmarshalWithExtra(data, &a, cuisineKeys)
	if err != nil {
		return err
	}
	a.Extra = extra
	*c = Cuisine(a)
	return nil
}

// URLSet holds the external urls discovered for a location.
type URLSet struct {
	Blog string `json:"blog,omitempty"`
	Yelp string `json:"yelp,omitempty"`
	Maps string `json:"maps,omitempty"`
}

// Link is a generic anchor extracted from the article body.
// StatusCode is 0 when the liveness check failed or was skipped.
type Link struct {
	Name       string `json:"name"`
	Href       string `json:"href"`
	StatusCode int    `json:"statusCode"`
}

// Image is reserved, article images are not downloaded.
type Image struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

// Content holds everything extracted from the article body.
type Content struct {
	A   []Link  `json:"a"`
	Img []Image `json:"img"`
}

// IDSet holds remote identifiers for a location.
type IDSet struct {
	Blog int64 `json:"blog,omitempty"`
}

// Location is one "### " entry of the master listing, enriched in place
// by the match/fetch/scrape stages after parsing.
type Location struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description,omitempty"`
	RawContactPoint string   `json:"rawContactPoint,omitempty"`
	Cuisines        []string `json:"cuisines"`
	URL             URLSet   `json:"url"`
	// the verbatim record returned by the blog api, kept opaque
	BlogData   json.RawMessage `json:"blogData,omitempty"`
	Content    *Content        `json:"content,omitempty"`
	ID         *IDSet          `json:"id,omitempty"`
	Date       *time.Time      `json:"date,omitempty"`
	Modified   *time.Time      `json:"modified,omitempty"`
	RawAddress string          `json:"rawAddress,omitempty"`
	Extra      map[string]any  `json:"-"`
}

var locationKeys = []string{
	"name", "slug", "description", "rawContactPoint", "cuisines",
	"url", "blogData", "content", "id", "date", "modified", "rawAddress",
}

func (l Location) MarshalJSON() ([]byte, error) {
	type alias Location
	return marshalWithExtra(alias(l), l.Extra)
}

func (l *Location) UnmarshalJSON(data []byte) error {
	type alias Location
	var a alias
	extra, err := unmarshalWithExtra(data, &a, locationKeys)
	if err != nil {
		return err
	}
	a.Extra = extra
	*l = Location(a)
	return nil
}

// marshalWithExtra serializes doc and splices the extra fields in as
// top-level keys. Keys already taken by a struct field are left alone.
func marshalWithExtra(doc any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}
	var obj map[string]any
	err = json.Unmarshal(data, &obj)
	if err != nil {
		return nil, err
	}
	for key, value := range extra {
		_, taken := obj[key]
		if !taken {
			obj[key] = value
		}
	}
	return json.Marshal(obj)
}

// unmarshalWithExtra decodes data into doc and collects any key not in
// known into the returned extra map, so a document round-trips through
// storage without losing its custom fields.
func unmarshalWithExtra(data []byte, doc any, known []string) (map[string]any, error) {
	err := json.Unmarshal(data, doc)
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	err = json.Unmarshal(data, &obj)
	if err != nil {
		return nil, err
	}
	for _, key := range known {
		delete(obj, key)
	}
	if len(obj) == 0 {
		return nil, nil
	}
	extra := make(map[string]any, len(obj))
	for key, raw := range obj {
		var value any
		err = json.Unmarshal(raw, &value)
		if err != nil {
			return nil, err
		}
		extra[key] = value
	}
	return extra, nil
}

// Completion markers, used by callers to decide whether a stage can be
// skipped on resume.

func (l *Location) HasMatch() bool { return l.URL.Blog != "" }

func (l *Location) HasPost() bool { return len(l.BlogData) > 0 }

func (l *Location) HasScrape() bool { return l.Content != nil }
