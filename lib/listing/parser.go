package listing

import (
	"bufio"
	"io"
	"strings"

	"github.com/gosimple/slug"
)

// state is the entity kind currently being built.
type state int

const (
	stateNone state = iota
	stateCuisine
	stateLocation
)

// substate is the part of the entity body currently being read.
type substate int

const (
	subName substate = iota
	subFields
	subDescription
)

// draft accumulates one entity across lines. It is constructed fresh
// per entity and handed off to the registry on commit, the parser never
// touches a committed document again.
type draft struct {
	name            string
	slug            string
	rawContactPoint string
	cuisines        []string
	descLines       []string
	extra           map[string]any
}

func newDraft() *draft {
	return &draft{extra: map[string]any{}}
}

// set applies one interpreted field. "slug" and "name" override the
// header-derived values, "cuisines" replaces the list, "description"
// seeds the prose that later body lines append to, everything else
// lands in the open extension map. A repeated key overwrites.
func (d *draft) set(key string, value any) {
	switch key {
	case "slug":
		if s, ok := value.(string); ok {
			d.slug = s
			return
		}
	case "name":
		if s, ok := value.(string); ok {
			d.name = s
			return
		}
	case "cuisines":
		if list, ok := value.([]string); ok {
			d.cuisines = list
			return
		}
	case "description":
		if s, ok := value.(string); ok {
			d.descLines = []string{s}
			return
		}
	}
	d.extra[key] = value
}

func (d *draft) description() string {
	return strings.Join(d.descLines, "\n")
}

func (d *draft) extraOrNil() map[string]any {
	if len(d.extra) == 0 {
		return nil
	}
	return d.extra
}

// Parser converts the master listing into cuisine and location
// documents. The grammar has no lookahead: every line is classified and
// consumed in a single pass, and a line that terminates one substate is
// reprocessed against the next substate within the same step.
type Parser struct {
	reg         *Registry
	state       state
	sub         substate
	draft       *draft
	cuisineSlug string
}

func NewParser() *Parser {
	return &Parser{
		reg:   NewRegistry(),
		sub:   subName,
		draft: newDraft(),
	}
}

// Parse consumes the listing line by line and returns the filled
// registry. The only possible error is a read failure, malformed lines
// are absorbed by whichever substate is active.
func (p *Parser) Parse(r io.Reader) (*Registry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.feed(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	p.endState()
	return p.reg, nil
}

// feed handles the state axis: a header line commits whatever entity
// was in progress and opens a new one. The line then falls through to
// the substate handling either way.
func (p *Parser) feed(line string) {
	switch ClassifyLine(line) {
	case KindCuisineHeader:
		p.endState()
		p.state = stateCuisine
	case KindLocationHeader:
		p.endState()
		p.state = stateLocation
	}
	p.consume(line)
}

// consume handles the substate axis. The checks are ordered so that a
// line which moves the parser out of one substate is immediately
// processed by the newly entered one (e.g. the first field line after a
// header both ends the name phase and is parsed as a field).
func (p *Parser) consume(line string) {
	if p.sub == subName {
		marker := cuisineMarker
		if p.state == stateLocation {
			marker = locationMarker
		}
		if strings.HasPrefix(line, marker) {
			body := line[len(marker):]
			// location headers read "name, street, city, phone",
			// the name is the segment before the first comma
			name, _, _ := strings.Cut(body, ",")
			p.draft.name = strings.TrimSpace(name)
			// may be overridden later by an explicit "* slug:" field
			p.draft.slug = slug.Make(p.draft.name)
			if p.state == stateLocation {
				p.draft.rawContactPoint = strings.TrimSpace(body)
			}
		} else if strings.TrimSpace(line) != "" {
			if strings.HasPrefix(line, fieldMarker) {
				p.sub = subFields
			} else {
				p.sub = subDescription
			}
		}
	}

	if p.sub == subFields {
		if strings.HasPrefix(line, fieldMarker) {
			key, value := SplitField(line)
			p.draft.set(key, InterpretField(key, value))
		} else if strings.TrimSpace(line) != "" {
			p.sub = subDescription
		}
	}

	// every remaining line, blank or not, belongs to the description
	if p.sub == subDescription {
		p.draft.descLines = append(p.draft.descLines, line)
	}
}

// endState commits the in-progress draft under the current state and
// resets for the next entity. Before the first header there is nothing
// to commit, stray preamble lines are simply dropped here.
func (p *Parser) endState() {
	switch p.state {
	case stateCuisine:
		c := &Cuisine{
			Name:        p.draft.name,
			Slug:        p.draft.slug,
			Description: p.draft.description(),
			Extra:       p.draft.extraOrNil(),
		}
		// subsequent locations are tagged with this section's slug
		p.cuisineSlug = c.Slug
		p.reg.CommitCuisine(c)
	case stateLocation:
		l := &Location{
			Name:            p.draft.name,
			Slug:            p.draft.slug,
			Description:     p.draft.description(),
			RawContactPoint: p.draft.rawContactPoint,
			Cuisines:        append(p.draft.cuisines, p.cuisineSlug),
			Extra:           p.draft.extraOrNil(),
		}
		p.reg.CommitLocation(l)
	}
	p.sub = subName
	p.draft = newDraft()
}
