package web

import (
	"database/sql"
	"net/http"
	"slices"

	"golang.org/x/time/rate"

	"github.com/hpungsan/folio/internal/config"
	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/errors"
	"github.com/hpungsan/folio/internal/facet"
	"github.com/hpungsan/folio/internal/ops"
)

// latestPosts is the number of posts shown on the home page.
const latestPosts = 3

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	lib      *content.Library
	db       *sql.DB
	cfg      *config.Config
	renderer *Renderer
	limiter  *rate.Limiter
}

// page builds the common page fields for r.
func (h *Handlers) page(r *http.Request, title, nav string) PageData {
	return PageData{
		Title:     title,
		Version:   h.renderer.version,
		Nav:       nav,
		Encounter: encounterMessage(r.Context()),
	}
}

// HandleHome handles GET /: listing overview and latest posts.
func (h *Handlers) HandleHome(w http.ResponseWriter, r *http.Request) {
	data := HomePageData{PageData: h.page(r, "Home", "home")}

	for _, name := range content.ListingNames {
		out, err := ops.List(h.lib, ops.ListInput{Listing: name, Limit: 1})
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		data.Sections = append(data.Sections, HomeSection{Name: name, Path: out.Path, Total: out.Total})
	}

	posts := slices.Clone(h.lib.Blog)
	slices.SortStableFunc(posts, facet.ByDateDesc[content.BlogPost])
	data.Posts = posts[:min(len(posts), latestPosts)]

	h.renderer.renderPage(w, r, "home", data)
}

// HandleListing returns the handler for GET /{listing}. The address query is
// the filter state: it is read here and every facet link writes a new one.
func (h *Handlers) HandleListing(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := ops.List(h.lib, ops.ListInput{
			Listing:  name,
			Criteria: facet.CriteriaFromValues(r.URL.Query(), nil),
		})
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}

		if wantsJSON(r) {
			renderJSON(w, http.StatusOK, out)
			return
		}

		data := ListingPageData{
			PageData:          h.page(r, listingTitle(name), name),
			Listing:           name,
			Path:              out.Path,
			Query:             out.Criteria.Query,
			Hidden:            hiddenFields(out.Criteria),
			Items:             out.Items,
			Count:             out.Count,
			Total:             out.Total,
			Facets:            facetViews(out.Path, out.Criteria, out.Facets),
			HasActiveFilters:  out.HasActiveFilters,
			DebounceMillis:    h.cfg.SearchDebounce().Milliseconds(),
			Timeline:          out.Timeline,
			ProjectCount:      out.ProjectCount,
			TotalProjectCount: out.TotalProjectCount,
		}

		// The search box only swaps the results section
		if r.Header.Get("HX-Target") == "results" {
			h.renderer.renderBlock(w, http.StatusOK, "listing", "results", data)
			return
		}
		h.renderer.renderPage(w, r, "listing", data)
	}
}

// HandlePost handles GET /blog/{slug}: a single rendered post.
func (h *Handlers) HandlePost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, ok := h.lib.Post(slug)
	if !ok {
		h.renderer.renderError(w, r, errors.NewNotFound("post", slug))
		return
	}

	h.renderer.renderPage(w, r, "post", PostPageData{
		PageData:     h.page(r, post.Title, content.ListingBlog),
		Post:         post,
		RenderedHTML: renderMarkdown(post.Body),
	})
}

// HandleTimeline handles GET /career/timeline: the gantt view of careers.
func (h *Handlers) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	out, err := ops.Timeline(h.lib, ops.TimelineInput{
		Criteria: facet.CriteriaFromValues(r.URL.Query(), nil),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, out)
		return
	}

	h.renderer.renderPage(w, r, "timeline", TimelinePageData{
		PageData: h.page(r, "Career timeline", content.ListingCareer),
		Timeline: out,
		Reset:    "/career/timeline",
	})
}

// HandleTool handles GET /tools/{id}: one catalog entry.
func (h *Handlers) HandleTool(w http.ResponseWriter, r *http.Request) {
	out, err := ops.ToolLookup(r.PathValue("id"))
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, out)
		return
	}

	h.renderer.renderPage(w, r, "tool", ToolPageData{
		PageData: h.page(r, out.Tool.Name, content.ListingTools),
		Tool:     out,
	})
}

func listingTitle(name string) string {
	switch name {
	case content.ListingBlog:
		return "Blog"
	case content.ListingTalk:
		return "Talks"
	case content.ListingCareer:
		return "Career"
	case content.ListingSlides:
		return "Slides"
	case content.ListingStack:
		return "Stack"
	case content.ListingTools:
		return "Tools"
	}
	return name
}
