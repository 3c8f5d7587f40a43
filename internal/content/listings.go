package content

import (
	"github.com/hpungsan/folio/internal/facet"
)

// Listing names.
const (
	ListingBlog   = "blog"
	ListingTalk   = "talk"
	ListingCareer = "career"
	ListingSlides = "slides"
	ListingStack  = "stack"
	ListingTools  = "tools"
)

// ListingNames lists every listing in navigation order.
var ListingNames = []string{ListingBlog, ListingTalk, ListingCareer, ListingSlides, ListingStack, ListingTools}

var (
	// BlogListing keeps source order.
	BlogListing = facet.Listing[BlogPost]{
		Name:   ListingBlog,
		Path:   "/blog",
		Facets: []facet.Facet{facet.Year, facet.Month, facet.Tag},
	}

	TalkListing = facet.Listing[Talk]{
		Name:   ListingTalk,
		Path:   "/talk",
		Facets: []facet.Facet{facet.Year, facet.Type, facet.Tag},
		Known:  map[facet.Facet][]string{facet.Type: TalkTypes},
	}

	// CareerListing is newest start date first.
	CareerListing = facet.Listing[Career]{
		Name:   ListingCareer,
		Path:   "/career",
		Facets: []facet.Facet{facet.Year, facet.Skill},
		Sort:   facet.ByDateDesc[Career],
	}

	SlideListing = facet.Listing[Slide]{
		Name:   ListingSlides,
		Path:   "/slides",
		Facets: []facet.Facet{facet.Year},
		Sort:   facet.ByDateDesc[Slide],
	}

	ToolListing = facet.Listing[Tool]{
		Name:   ListingTools,
		Path:   "/tools",
		Facets: []facet.Facet{facet.Type},
		Known:  map[facet.Facet][]string{facet.Type: toolCategoryIDs()},
	}
)

// StackListing filters technologies by type. Every loaded category is offered.
func (l *Library) StackListing() facet.Listing[Technology] {
	ids := make([]string, len(l.Categories))
	for i, c := range l.Categories {
		ids[i] = c.ID
	}
	return facet.Listing[Technology]{
		Name:   ListingStack,
		Path:   "/stack",
		Facets: []facet.Facet{facet.Type},
		Known:  map[facet.Facet][]string{facet.Type: ids},
	}
}

// FacetsOf returns the facets of the named listing.
func FacetsOf(name string) ([]facet.Facet, bool) {
	switch name {
	case ListingBlog:
		return BlogListing.Facets, true
	case ListingTalk:
		return TalkListing.Facets, true
	case ListingCareer:
		return CareerListing.Facets, true
	case ListingSlides:
		return SlideListing.Facets, true
	case ListingStack:
		return []facet.Facet{facet.Type}, true
	case ListingTools:
		return ToolListing.Facets, true
	}
	return nil, false
}

// PathOf returns the canonical address of the named listing.
func PathOf(name string) string {
	return "/" + name
}
