package listing

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sampleListing = `# Restaurants

## Thai

The best Thai spots in the area.

### Thai Corner, 123 Main St, Arlington, (555) 555-0100
* delivery: true
* price: $$

A cozy corner spot.

Cash only.

### Bangkok Garden, 456 Oak Ave, Falls Church, (555) 555-0101

Garden seating out back.

## Vietnamese

### Pho Palace, 789 Elm St, Annandale, (555) 555-0102
`

func parseString(t testing.TB, text string) *Registry {
	reg, err := NewParser().Parse(strings.NewReader(text))
	require.NoError(t, err)
	return reg
}

func TestParseSampleListing(t *testing.T) {
	reg := parseString(t, sampleListing)

	cuisines := reg.Cuisines()
	locations := reg.Locations()
	require.Len(t, cuisines, 2)
	require.Len(t, locations, 3)

	require.Equal(t, "Thai", cuisines[0].Name)
	require.Equal(t, "thai", cuisines[0].Slug)
	require.Equal(t, "The best Thai spots in the area.\n", cuisines[0].Description)
	require.Equal(t, "vietnamese", cuisines[1].Slug)

	// every location is tagged with exactly the slug of its
	// immediately preceding cuisine section
	expected := []struct {
		slug    string
		cuisine string
	}{
		{slug: "thai-corner", cuisine: "thai"},
		{slug: "bangkok-garden", cuisine: "thai"},
		{slug: "pho-palace", cuisine: "vietnamese"},
	}
	for i, e := range expected {
		require.Equal(t, e.slug, locations[i].Slug)
		require.Equal(t, []string{e.cuisine}, locations[i].Cuisines)
	}
}

func TestParseLocationHeader(t *testing.T) {
	reg := parseString(t, "## Thai\n### Thai Corner, 123 Main St, Arlington, (555) 555-0100\n")

	locations := reg.Locations()
	require.Len(t, locations, 1)

	loc := locations[0]
	require.Equal(t, "Thai Corner", loc.Name)
	require.Equal(t, "thai-corner", loc.Slug)
	// the full remainder of the header line is kept verbatim
	require.Equal(t, "Thai Corner, 123 Main St, Arlington, (555) 555-0100", loc.RawContactPoint)
}

// The grammar has no lookahead: a field line immediately following a
// header both ends the name phase and must be parsed as a field within
// the same step.
func TestParseFieldFallthrough(t *testing.T) {
	reg := parseString(t, "## Thai\n* first field: x\n")

	cuisines := reg.Cuisines()
	require.Len(t, cuisines, 1)
	require.Equal(t, "x", cuisines[0].Extra["first field"])
	require.Empty(t, cuisines[0].Description)
}

// Same fallthrough from the fields substate: a prose line ends the
// fields phase and is recorded as the first description line.
func TestParseDescriptionFallthrough(t *testing.T) {
	reg := parseString(t, strings.Join([]string{
		"### Thai Corner, 123 Main St",
		"* delivery: true",
		"first description line",
		"",
		"after a blank",
	}, "\n"))

	locations := reg.Locations()
	require.Len(t, locations, 1)
	require.Equal(t, true, locations[0].Extra["delivery"])
	require.Equal(t, "first description line\n\nafter a blank", locations[0].Description)
}

// A "* description:" field is a document field like name or slug, it
// seeds the prose instead of landing in the extension map.
func TestParseDescriptionField(t *testing.T) {
	reg := parseString(t, strings.Join([]string{
		"### Thai Corner, 123 Main St",
		"* description: Short blurb",
		"longer prose below",
	}, "\n"))

	locations := reg.Locations()
	require.Len(t, locations, 1)
	require.Equal(t, "Short blurb\nlonger prose below", locations[0].Description)
	require.NotContains(t, locations[0].Extra, "description")
}

func TestParseFieldOverrides(t *testing.T) {
	reg := parseString(t, strings.Join([]string{
		"## Thai",
		"### Thai Corner, 123 Main St",
		"* slug: the-corner",
		"* cuisines: Fusion",
		"* price: $",
		"* price: $$",
	}, "\n"))

	locations := reg.Locations()
	require.Len(t, locations, 1)

	loc := locations[0]
	// an explicit slug field overrides the name-derived slug
	require.Equal(t, "the-corner", loc.Slug)
	// the section slug is appended to, not replacing, the field list
	require.Equal(t, []string{"Fusion", "thai"}, loc.Cuisines)
	// later field lines with the same key overwrite earlier ones
	require.Equal(t, "$$", loc.Extra["price"])
}

func TestParseDuplicateSlugs(t *testing.T) {
	reg := parseString(t, strings.Join([]string{
		"## Thai",
		"### Thai Corner, 123 Main St",
		"* price: $",
		"### Thai Corner, 999 Other Rd",
		"* price: $$$",
	}, "\n"))

	locations := reg.Locations()
	require.Len(t, locations, 1)
	// first occurrence wins regardless of field differences
	require.Equal(t, "123 Main St", strings.Split(locations[0].RawContactPoint, ", ")[1])
	require.Equal(t, "$", locations[0].Extra["price"])
}

// Malformed input never fails the parse, stray lines are absorbed by
// whichever substate is active. This tolerance is a deliberate policy
// of the listing grammar, not an accident.
func TestParsePermissiveness(t *testing.T) {
	reg := parseString(t, strings.Join([]string{
		"stray preamble before any header",
		"## Thai",
		"* broken field without colon",
		"*not a field, missing the space",
		"#### too many hashes",
	}, "\n"))

	cuisines := reg.Cuisines()
	require.Len(t, cuisines, 1)
	require.Empty(t, reg.Locations())

	c := cuisines[0]
	// the colonless field degrades to a key with an empty value
	require.Equal(t, "", c.Extra["broken field without colon"])
	// the rest fell through to the description
	require.Equal(t, "*not a field, missing the space\n#### too many hashes", c.Description)
}

func TestParseAccentedNames(t *testing.T) {
	reg := parseString(t, "## Café Cuisine\n")

	cuisines := reg.Cuisines()
	require.Len(t, cuisines, 1)
	require.Equal(t, "Café Cuisine", cuisines[0].Name)
	require.Equal(t, "cafe-cuisine", cuisines[0].Slug)
}

func TestParseIsRepeatable(t *testing.T) {
	a := parseString(t, sampleListing)
	b := parseString(t, sampleListing)

	if diff := cmp.Diff(a.Cuisines(), b.Cuisines()); diff != "" {
		t.Fatalf("cuisine mismatch (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Locations(), b.Locations()); diff != "" {
		t.Fatalf("location mismatch (-a +b):\n%s", diff)
	}
}
