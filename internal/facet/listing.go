package facet

import (
	"net/url"
	"slices"
	"strings"
)

// Listing describes one filterable collection type: its canonical address,
// the facets it exposes and how results are ordered.
type Listing[T Item] struct {
	// Name identifies the listing ("blog", "talk", ...).
	Name string
	// Path is the canonical unfiltered address.
	Path string
	// Facets are the dimensions this listing filters and summarizes on.
	Facets []Facet
	// Known facet values are always summarized, even with a zero count.
	Known map[Facet][]string
	// Sort, when set, is applied as a stable sort after filtering.
	// Nil keeps source order.
	Sort func(a, b T) int
}

// Filter returns the items matching every active criterion, in listing order.
// The result is never nil and never aliases items.
func (l Listing[T]) Filter(items []T, c Criteria) []T {
	out := make([]T, 0, len(items))
	m := newMatcher(c)
	for _, it := range items {
		if m.match(it) {
			out = append(out, it)
		}
	}
	if l.Sort != nil {
		slices.SortStableFunc(out, l.Sort)
	}
	return out
}

// Criteria reads this listing's criteria from address values.
func (l Listing[T]) Criteria(values url.Values) Criteria {
	return CriteriaFromValues(values, l.Facets)
}

// matcher holds a criteria set prepared for repeated evaluation.
type matcher struct {
	query  string
	facets []Facet
	values []string
}

func newMatcher(c Criteria) matcher {
	m := matcher{query: strings.ToLower(strings.TrimSpace(c.Query))}
	for _, f := range c.Active() {
		m.facets = append(m.facets, f)
		m.values = append(m.values, c.Get(f))
	}
	return m
}

func (m matcher) match(it Item) bool {
	if m.query != "" && !matchesQuery(it, m.query) {
		return false
	}
	for i, f := range m.facets {
		if !matchesFacet(it, f, m.values[i]) {
			return false
		}
	}
	return true
}

func matchesQuery(it Item, lowered string) bool {
	for _, field := range it.SearchFields() {
		if field != "" && strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

func matchesFacet(it Item, f Facet, want string) bool {
	switch f {
	case Year:
		y := YearOf(it.PrimaryDate())
		return y != "" && y == want
	case Month:
		m := MonthOf(it.PrimaryDate())
		return m != "" && m == want
	}
	return slices.Contains(it.FacetValues(f), want)
}

// valuesOf returns the item's values for f, deriving date facets.
func valuesOf(it Item, f Facet) []string {
	switch f {
	case Year:
		if y := YearOf(it.PrimaryDate()); y != "" {
			return []string{y}
		}
		return nil
	case Month:
		if m := MonthOf(it.PrimaryDate()); m != "" {
			return []string{m}
		}
		return nil
	}
	return it.FacetValues(f)
}
