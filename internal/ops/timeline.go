package ops

import (
	"time"

	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/facet"
	"github.com/hpungsan/folio/internal/gantt"
)

// TimelineInput contains parameters for the Timeline operation.
type TimelineInput struct {
	Criteria facet.Criteria
	Now      time.Time // default: time.Now()
}

// TimelineBar is one career placed on the timeline.
type TimelineBar struct {
	Code  string    `json:"code"`
	Title string    `json:"title"`
	Start string    `json:"start"`
	End   string    `json:"end,omitempty"`
	Bar   gantt.Bar `json:"bar"`
}

// YearMark is an axis tick.
type YearMark struct {
	Year     int     `json:"year"`
	Position float64 `json:"position"`
}

// TimelineOutput contains the result of the Timeline operation.
type TimelineOutput struct {
	Range    gantt.Range    `json:"range"`
	HasRange bool           `json:"has_range"`
	Bars     []TimelineBar  `json:"bars"`
	Years    []YearMark     `json:"years"`
	Current  float64        `json:"current"`
	Criteria facet.Criteria `json:"criteria"`
}

// Timeline lays out the filtered careers as a horizontal gantt chart.
func Timeline(lib *content.Library, input TimelineInput) (*TimelineOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	c := content.CareerListing.Criteria(input.Criteria.Values())
	careers := content.CareerListing.Filter(lib.Careers, c)

	spans := make([]gantt.Span, len(careers))
	for i, career := range careers {
		spans[i] = career.Span()
	}
	r, ok := gantt.NewRange(spans, now)

	out := &TimelineOutput{
		Range:    r,
		HasRange: ok,
		Bars:     make([]TimelineBar, 0, len(careers)),
		Years:    make([]YearMark, 0, len(r.Years)),
		Current:  r.CurrentPosition(now),
		Criteria: c,
	}
	for _, career := range careers {
		out.Bars = append(out.Bars, TimelineBar{
			Code:  career.Code,
			Title: career.Title,
			Start: career.DateStart,
			End:   career.DateEnd,
			Bar:   r.Bar(career.Span(), now),
		})
	}
	for _, y := range r.Years {
		out.Years = append(out.Years, YearMark{Year: y, Position: r.YearPosition(y)})
	}
	return out, nil
}
