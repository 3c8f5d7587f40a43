package facet

import (
	"net/url"
	"slices"
	"strings"
)

// Criteria is the current filter selection. An empty field means unset.
type Criteria struct {
	Query string `json:"q,omitempty"`
	Year  string `json:"year,omitempty"`
	Month string `json:"month,omitempty"`
	Tag   string `json:"tag,omitempty"`
	Type  string `json:"type,omitempty"`
	Skill string `json:"skill,omitempty"`
}

// Get returns the selected value for f.
func (c Criteria) Get(f Facet) string {
	switch f {
	case Year:
		return c.Year
	case Month:
		return c.Month
	case Tag:
		return c.Tag
	case Type:
		return c.Type
	case Skill:
		return c.Skill
	}
	return ""
}

// With returns a copy of c with f set to value. An empty value clears f.
func (c Criteria) With(f Facet, value string) Criteria {
	switch f {
	case Year:
		c.Year = value
	case Month:
		c.Month = value
	case Tag:
		c.Tag = value
	case Type:
		c.Type = value
	case Skill:
		c.Skill = value
	}
	return c
}

// Toggle selects value for f, or clears f when value is already selected.
// Any change to Year also clears Month.
func (c Criteria) Toggle(f Facet, value string) Criteria {
	next := value
	if c.Get(f) == value {
		next = ""
	}
	if f == Year && next != c.Year {
		c.Month = ""
	}
	return c.With(f, next)
}

// IsZero reports whether no criterion is active.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Active lists the facets with a selected value, in address order.
func (c Criteria) Active() []Facet {
	var active []Facet
	for _, f := range All {
		if c.Get(f) != "" {
			active = append(active, f)
		}
	}
	return active
}

// Values encodes c for the navigable address. Only non-empty fields appear;
// the query is trimmed, so a blank query is left out.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if q := strings.TrimSpace(c.Query); q != "" {
		v.Set(QueryKey, q)
	}
	for _, f := range All {
		if s := c.Get(f); s != "" {
			v.Set(f.key, s)
		}
	}
	return v
}

// Encode returns the query string form of Values ("" when nothing is set).
func (c Criteria) Encode() string {
	return c.Values().Encode()
}

// Href joins path and the encoded criteria.
func (c Criteria) Href(path string) string {
	if q := c.Encode(); q != "" {
		return path + "?" + q
	}
	return path
}

// CriteriaFromValues reads criteria from an address. Missing keys are unset;
// keys for facets not in supported are ignored. A nil supported list accepts
// every facet.
func CriteriaFromValues(v url.Values, supported []Facet) Criteria {
	c := Criteria{Query: strings.TrimSpace(v.Get(QueryKey))}
	for _, f := range All {
		if supported != nil && !slices.Contains(supported, f) {
			continue
		}
		c = c.With(f, strings.TrimSpace(v.Get(f.key)))
	}
	return c
}
