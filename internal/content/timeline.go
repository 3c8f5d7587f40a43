package content

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/hpungsan/folio/internal/facet"
)

// YearGroup is the careers that started in one year.
type YearGroup struct {
	Year    string   `json:"year"`
	Careers []Career `json:"careers"`
}

// GroupByYear groups careers by start year, newest year first. Order within a
// year follows the input. Careers with an unparseable start date are grouped
// under an empty year, last.
func GroupByYear(careers []Career) []YearGroup {
	var groups []YearGroup
	index := make(map[string]int)
	for _, c := range careers {
		y := facet.YearOf(c.DateStart)
		i, ok := index[y]
		if !ok {
			i = len(groups)
			index[y] = i
			groups = append(groups, YearGroup{Year: y})
		}
		groups[i].Careers = append(groups[i].Careers, c)
	}

	slices.SortStableFunc(groups, func(a, b YearGroup) int {
		if a.Year == "" || b.Year == "" {
			return cmp.Compare(len(b.Year), len(a.Year))
		}
		ai, _ := strconv.Atoi(a.Year)
		bi, _ := strconv.Atoi(b.Year)
		return cmp.Compare(bi, ai)
	})
	return groups
}

// ProjectCount sums the projects of careers.
func ProjectCount(careers []Career) int {
	n := 0
	for _, c := range careers {
		n += len(c.Projects)
	}
	return n
}
