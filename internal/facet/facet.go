// Package facet filters, sorts and summarizes in-memory content collections.
//
// A collection is any slice of values implementing Item. A Listing binds a
// collection type to the facets it supports and an optional sort order; its
// Filter and Summaries methods are pure functions of (items, Criteria).
package facet

// Facet is a filterable dimension of a listing. The set is closed: code outside
// this package can only use the exported values below.
type Facet struct {
	key string
}

var (
	Year  = Facet{key: "year"}
	Month = Facet{key: "month"}
	Tag   = Facet{key: "tag"}
	Type  = Facet{key: "type"}
	Skill = Facet{key: "skill"}
)

// QueryKey is the address key for the free-text search query.
const QueryKey = "q"

// All lists every facet in address order.
var All = []Facet{Year, Month, Tag, Type, Skill}

// Key returns the address key for f ("year", "tag", ...).
func (f Facet) Key() string { return f.key }

func (f Facet) String() string { return f.key }

// MarshalText encodes f as its address key.
func (f Facet) MarshalText() ([]byte, error) { return []byte(f.key), nil }

// Lookup resolves an address key to a facet.
func Lookup(key string) (Facet, bool) {
	for _, f := range All {
		if f.key == key {
			return f, true
		}
	}
	return Facet{}, false
}

// Item is the accessor set a content variant exposes to the engine.
type Item interface {
	// Label is the display title.
	Label() string
	// SearchFields returns the text matched by the search query. The title is
	// always included; empty strings are ignored.
	SearchFields() []string
	// PrimaryDate returns the raw date string year/month facets are derived from.
	PrimaryDate() string
	// FacetValues returns the item's values for Tag, Type or Skill.
	FacetValues(f Facet) []string
}
