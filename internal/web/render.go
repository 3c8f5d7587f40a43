package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/errors"
	"github.com/hpungsan/folio/internal/facet"
	"github.com/hpungsan/folio/internal/ops"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title     string
	Version   string
	Nav       string // active nav item: a listing name or "home"
	Encounter string // footer message, empty when unknown
}

// HomePageData is the template data for the landing page.
type HomePageData struct {
	PageData
	Sections []HomeSection
	Posts    []content.BlogPost
}

// HomeSection links to one listing.
type HomeSection struct {
	Name  string
	Path  string
	Total int
}

// ListingPageData is the template data shared by every listing page.
type ListingPageData struct {
	PageData
	Listing          string
	Path             string
	Query            string
	Hidden           []HiddenField
	Items            any
	Count            int
	Total            int
	Facets           []FacetView
	HasActiveFilters bool
	DebounceMillis   int64

	// Career listing only
	Timeline          []content.YearGroup
	ProjectCount      int
	TotalProjectCount int
}

// HiddenField keeps an active facet in the search form so submitting the
// query does not drop it.
type HiddenField struct {
	Name  string
	Value string
}

// FacetView is one facet's links.
type FacetView struct {
	Key    string
	Values []FacetValueView
}

// FacetValueView is a single facet value. Href is the address after toggling it.
type FacetValueView struct {
	Value    string
	Count    int
	Selected bool
	Href     string
}

// PostPageData is the template data for a blog post.
type PostPageData struct {
	PageData
	Post         content.BlogPost
	RenderedHTML template.HTML
}

// TimelinePageData is the template data for the career gantt chart.
type TimelinePageData struct {
	PageData
	Timeline *ops.TimelineOutput
	Reset    string
}

// ToolPageData is the template data for a tool page.
type ToolPageData struct {
	PageData
	Tool *ops.ToolLookupOutput
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"add":     func(a, b int) int { return a + b },
		"percent": func(f float64) string { return fmt.Sprintf("%.3f", f) },
		"join":    strings.Join,
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"home":     "home.html",
		"listing":  "listing.html",
		"post":     "post.html",
		"timeline": "timeline.html",
		"tool":     "tool.html",
		"error":    "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, req *http.Request, name string, data any) {
	r.renderPageStatus(w, req, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
// For htmx-style requests only the "content" block is rendered.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	block := "layout"
	if req != nil && req.Header.Get("HX-Request") == "true" {
		block = "content"
	}
	r.renderBlock(w, status, name, block, data)
}

// renderBlock renders a specific named block from a page template.
// Used for partial swaps that target a sub-section of the page.
func (r *Renderer) renderBlock(w http.ResponseWriter, status int, page, block string, data any) {
	t, ok := r.templates[page]
	if !ok {
		log.Printf("template %q not found", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, block, data); err != nil {
		log.Printf("template block %q execution error: %v", block, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var fErr *errors.FolioError
	if !stderrors.As(err, &fErr) {
		fErr = errors.NewInternal(err)
	}

	status := fErr.Status
	message := fErr.Message

	// htmx-style request: return HTML fragment
	if req.Header.Get("HX-Request") == "true" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprintf(w, `<div class="error-message">%s</div>`, template.HTMLEscapeString(message))
		return
	}

	if wantsJSON(req) {
		renderJSON(w, status, map[string]any{
			"error": map[string]any{
				"code":    string(fErr.Code),
				"message": message,
				"status":  status,
			},
		})
		return
	}

	r.renderPageStatus(w, req, status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", status),
			Version: r.version,
		},
		StatusCode: status,
		Message:    message,
	})
}

// wantsJSON reports whether the client asked for a JSON response.
func wantsJSON(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "application/json")
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// facetViews turns summaries into toggle links on path.
func facetViews(path string, c facet.Criteria, summaries []facet.Summary) []FacetView {
	views := make([]FacetView, 0, len(summaries))
	for _, s := range summaries {
		v := FacetView{Key: s.Facet.Key(), Values: make([]FacetValueView, 0, len(s.Values))}
		for _, count := range s.Values {
			v.Values = append(v.Values, FacetValueView{
				Value:    count.Value,
				Count:    count.Count,
				Selected: count.Value == s.Selected,
				Href:     c.Toggle(s.Facet, count.Value).Href(path),
			})
		}
		views = append(views, v)
	}
	return views
}

// hiddenFields lists the active facets of c for the search form.
func hiddenFields(c facet.Criteria) []HiddenField {
	var fields []HiddenField
	for _, f := range c.Active() {
		fields = append(fields, HiddenField{Name: f.Key(), Value: c.Get(f)})
	}
	return fields
}
