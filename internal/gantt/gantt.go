// Package gantt positions date ranges on a horizontal year timeline.
//
// The newest year is on the left. Positions are percentages of the timeline
// width measured from the right-hand end of the range. Every function takes the
// current time explicitly.
package gantt

import (
	"math"
	"time"

	"github.com/hpungsan/folio/internal/facet"
)

// DaysPerMonth is the average month length used for all distances.
const DaysPerMonth = 30.44

// MinBarWidth keeps zero-length spans visible.
const MinBarWidth = 0.5

// Span is a date range in the lenient content date format. An empty End means
// the range is still open.
type Span struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Range is the visible timeline.
type Range struct {
	StartYear   int   `json:"start_year"`
	EndYear     int   `json:"end_year"`
	Years       []int `json:"years"`
	TotalMonths int   `json:"total_months"`
}

// Bar is the horizontal placement of one span, in percent.
type Bar struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// fallbackBar is used when there is no range to place a span on.
var fallbackBar = Bar{Left: 0, Width: 10}

// MonthsBetween returns the distance from a to b in average months.
func MonthsBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24 / DaysPerMonth
}

// NewRange computes the timeline covering spans: from the earliest start year
// to the latest end year (now for open spans) plus one. Unparseable dates are
// skipped. ok is false when no date could be placed.
func NewRange(spans []Span, now time.Time) (r Range, ok bool) {
	var minT, maxT time.Time
	add := func(t time.Time) {
		if !ok || t.Before(minT) {
			minT = t
		}
		if !ok || t.After(maxT) {
			maxT = t
		}
		ok = true
	}

	for _, s := range spans {
		if t, parsed := facet.ParseDate(s.Start); parsed {
			add(t)
		}
		add(endOf(s, now))
	}
	if !ok {
		return Range{}, false
	}

	r.StartYear = minT.Year()
	r.EndYear = maxT.Year() + 1
	r.TotalMonths = (r.EndYear - r.StartYear) * 12
	for y := r.EndYear; y >= r.StartYear; y-- {
		r.Years = append(r.Years, y)
	}
	return r, true
}

// endOf resolves the end of s, treating open or unparseable ends as now.
func endOf(s Span, now time.Time) time.Time {
	if t, ok := facet.ParseDate(s.End); ok {
		return t
	}
	return now.UTC()
}

func (r Range) end() time.Time {
	return time.Date(r.EndYear, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func (r Range) percent(months float64) float64 {
	return months / float64(r.TotalMonths) * 100
}

// Bar places s on the timeline.
func (r Range) Bar(s Span, now time.Time) Bar {
	start, ok := facet.ParseDate(s.Start)
	if r.TotalMonths <= 0 || !ok {
		return fallbackBar
	}
	end := endOf(s, now)
	return Bar{
		Left:  r.percent(MonthsBetween(end, r.end())),
		Width: math.Max(r.percent(MonthsBetween(start, end)), MinBarWidth),
	}
}

// YearPosition is the left offset of the January 1st mark of year.
func (r Range) YearPosition(year int) float64 {
	if r.TotalMonths <= 0 {
		return 0
	}
	return r.percent(float64((r.EndYear - year) * 12))
}

// CurrentPosition is the left offset of now, never negative.
func (r Range) CurrentPosition(now time.Time) float64 {
	if r.TotalMonths <= 0 {
		return 0
	}
	return math.Max(0, r.percent(MonthsBetween(now.UTC(), r.end())))
}
