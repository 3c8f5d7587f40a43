package ops

import (
	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/errors"
	"github.com/hpungsan/folio/internal/facet"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Listing  string         // required, one of content.ListingNames
	Criteria facet.Criteria // facets the listing does not support are dropped
	Limit    int            // default: all, max: 100
	Offset   int            // default: 0
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Listing          string          `json:"listing"`
	Path             string          `json:"path"`
	Address          string          `json:"address"`
	Criteria         facet.Criteria  `json:"criteria"`
	Items            any             `json:"items"`
	Count            int             `json:"count"`
	Total            int             `json:"total"`
	Facets           []facet.Summary `json:"facets"`
	HasActiveFilters bool            `json:"has_active_filters"`
	Pagination       Pagination      `json:"pagination"`

	// Career listing only
	Timeline          []content.YearGroup `json:"timeline,omitempty"`
	ProjectCount      int                 `json:"project_count,omitempty"`
	TotalProjectCount int                 `json:"total_project_count,omitempty"`
}

// List filters one content listing and summarizes its facets.
func List(lib *content.Library, input ListInput) (*ListOutput, error) {
	switch input.Listing {
	case content.ListingBlog:
		out, _ := listOf(content.BlogListing, lib.Blog, input)
		return out, nil
	case content.ListingTalk:
		out, _ := listOf(content.TalkListing, lib.Talks, input)
		return out, nil
	case content.ListingCareer:
		out, filtered := listOf(content.CareerListing, lib.Careers, input)
		out.Timeline = content.GroupByYear(filtered)
		out.ProjectCount = content.ProjectCount(filtered)
		out.TotalProjectCount = content.ProjectCount(lib.Careers)
		return out, nil
	case content.ListingSlides:
		out, _ := listOf(content.SlideListing, lib.Slides, input)
		return out, nil
	case content.ListingStack:
		out, _ := listOf(lib.StackListing(), lib.Stack, input)
		return out, nil
	case content.ListingTools:
		out, _ := listOf(content.ToolListing, content.Tools(), input)
		return out, nil
	}
	return nil, errors.NewUnknownListing(input.Listing, content.ListingNames)
}

// listOf runs the filter and aggregator for one listing. It also returns the
// full filtered result, before pagination.
func listOf[T facet.Item](l facet.Listing[T], all []T, input ListInput) (*ListOutput, []T) {
	c := l.Criteria(input.Criteria.Values())
	filtered := l.Filter(all, c)
	page, pagination := paginate(filtered, input.Limit, input.Offset)

	return &ListOutput{
		Listing:          l.Name,
		Path:             l.Path,
		Address:          c.Href(l.Path),
		Criteria:         c,
		Items:            page,
		Count:            len(filtered),
		Total:            len(all),
		Facets:           l.Summaries(all, c),
		HasActiveFilters: !c.IsZero(),
		Pagination:       pagination,
	}, filtered
}
