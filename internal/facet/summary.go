package facet

import (
	"cmp"
	"slices"
	"strconv"
)

// Count pairs a facet value with the number of items that would remain if it
// were selected on top of the other active criteria.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Summary lists the available values of one facet.
type Summary struct {
	Facet    Facet   `json:"facet"`
	Selected string  `json:"selected,omitempty"`
	Values   []Count `json:"values"`
}

// Counts returns the summary as a value -> count map.
func (s Summary) Counts() map[string]int {
	m := make(map[string]int, len(s.Values))
	for _, v := range s.Values {
		m[v.Value] = v.Count
	}
	return m
}

// Summaries computes a Summary for every facet of the listing.
func (l Listing[T]) Summaries(items []T, c Criteria) []Summary {
	out := make([]Summary, 0, len(l.Facets))
	for _, f := range l.Facets {
		out = append(out, l.Summary(items, c, f))
	}
	return out
}

// Summary computes the available values of f across the full collection and,
// for each, re-runs the filter with that value selected. Month values are only
// offered inside the selected year.
func (l Listing[T]) Summary(items []T, c Criteria, f Facet) Summary {
	s := Summary{Facet: f, Selected: c.Get(f), Values: []Count{}}
	if f == Month && c.Year == "" {
		return s
	}

	seen := make(map[string]bool)
	var values []string
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	for _, v := range l.Known[f] {
		add(v)
	}
	for _, it := range items {
		if f == Month && YearOf(it.PrimaryDate()) != c.Year {
			continue
		}
		for _, v := range valuesOf(it, f) {
			add(v)
		}
	}

	sortValues(f, values)
	for _, v := range values {
		s.Values = append(s.Values, Count{Value: v, Count: countMatches(items, selecting(c, f, v))})
	}
	return s
}

// selecting returns the criteria a user gets by picking v for f. Moving to
// another year drops the month, as Toggle does.
func selecting(c Criteria, f Facet, v string) Criteria {
	next := c.With(f, v)
	if f == Year && v != c.Year {
		next.Month = ""
	}
	return next
}

func countMatches[T Item](items []T, c Criteria) int {
	m := newMatcher(c)
	n := 0
	for _, it := range items {
		if m.match(it) {
			n++
		}
	}
	return n
}

// sortValues orders years newest first and everything else ascending.
func sortValues(f Facet, values []string) {
	if f != Year {
		slices.Sort(values)
		return
	}
	slices.SortFunc(values, func(a, b string) int {
		ai, errA := strconv.Atoi(a)
		bi, errB := strconv.Atoi(b)
		if errA == nil && errB == nil {
			return cmp.Compare(bi, ai)
		}
		return cmp.Compare(b, a)
	})
}
