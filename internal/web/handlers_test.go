package web

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/hpungsan/folio/internal/config"
	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/db"
)

func testLibrary() *content.Library {
	return &content.Library{
		Blog: []content.BlogPost{
			{Slug: "hello", Title: "Hello 2021", Created: "2021/01/10", Tags: []string{"Go"}},
			{Slug: "rust-basics", Title: "Learning Rust Basics", Created: "2022/03/01", Tags: []string{"Systems"}, Body: "# Ownership\n\nBorrowing **rules**."},
			{Slug: "ownership", Title: "Ownership Deep Dive", Created: "2022/07/04", Tags: []string{"Rust"}},
			{Slug: "nuxt", Title: "Nuxt Content Tips", Created: "2023/11/20", Tags: []string{"Vue", "Go"}},
		},
		Talks: []content.Talk{
			{Slug: "vuefes", Title: "Composable design", EventName: "Vue Fes", EventDate: "2023/10/28", Type: content.TalkConference},
		},
		Careers: []content.Career{
			{Code: "agency", Title: "Agency", DateStart: "2018/04", DateEnd: "2020/12", Projects: []content.Project{
				{Title: "Shop", Stacks: []string{"PHP"}},
			}},
			{Code: "startup", Title: "Startup", DateStart: "2021/01", Projects: []content.Project{
				{Title: "Dashboard", Stacks: []string{"Go", "Vue"}},
			}},
		},
		Slides: []content.Slide{{Slug: "intro", Title: "Intro deck", Date: "2023-05-01"}},
		Stack:  []content.Technology{{ID: "go", Name: "Go", Category: "language"}},
	}
}

func setupTest(t *testing.T) *Handlers {
	t.Helper()
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}

	return &Handlers{
		lib:      testLibrary(),
		db:       database,
		cfg:      config.DefaultConfig(),
		renderer: NewRenderer(templateSub, "test"),
		limiter:  rate.NewLimiter(rate.Inf, 1),
	}
}

func serve(h *Handlers, req *http.Request) *httptest.ResponseRecorder {
	staticSub, _ := fs.Sub(staticFS, "static")
	rec := httptest.NewRecorder()
	h.routes(staticSub).ServeHTTP(rec, req)
	return rec
}

// --- HandleHome ---

func TestHandleHome(t *testing.T) {
	h := setupTest(t)

	rec := serve(h, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`href="/blog"`, `href="/career"`, "Nuxt Content Tips"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in home page", want)
		}
	}
}

func TestHandleHome_LatestPostsNewestFirst(t *testing.T) {
	h := setupTest(t)
	h.lib.Blog = []content.BlogPost{
		{Slug: "nuxt", Title: "Nuxt Content Tips", Created: "2023/11/20"},
		{Slug: "hello", Title: "Hello 2021", Created: "2021/01/10"},
		{Slug: "ownership", Title: "Ownership Deep Dive", Created: "2022/07/04"},
		{Slug: "rust-basics", Title: "Learning Rust Basics", Created: "2022/03/01"},
	}

	body := serve(h, httptest.NewRequest("GET", "/", nil)).Body.String()
	if strings.Contains(body, "Hello 2021") {
		t.Error("oldest post should not be on the home page")
	}
	nuxt := strings.Index(body, "Nuxt Content Tips")
	ownership := strings.Index(body, "Ownership Deep Dive")
	rust := strings.Index(body, "Learning Rust Basics")
	if nuxt < 0 || ownership < 0 || rust < 0 || !(nuxt < ownership && ownership < rust) {
		t.Errorf("latest posts out of order: nuxt=%d ownership=%d rust=%d", nuxt, ownership, rust)
	}
	if h.lib.Blog[0].Slug != "nuxt" || h.lib.Blog[1].Slug != "hello" {
		t.Error("home page reordered the library")
	}
}

// --- HandleListing ---

func TestHandleListing_Default(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/blog", nil)
	rec := httptest.NewRecorder()
	h.HandleListing(content.ListingBlog)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("expected full layout")
	}
	for _, title := range []string{"Hello 2021", "Learning Rust Basics", "Ownership Deep Dive", "Nuxt Content Tips"} {
		if !strings.Contains(body, title) {
			t.Errorf("expected %q in listing", title)
		}
	}
	if strings.Contains(body, "Reset filters") {
		t.Error("reset link should be hidden without active filters")
	}
	if !strings.Contains(body, `data-debounce="300"`) {
		t.Error("expected search form debounce attribute")
	}
}

func TestHandleListing_FacetFromAddress(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/blog?year=2022", nil)
	rec := httptest.NewRecorder()
	h.HandleListing(content.ListingBlog)(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Learning Rust Basics") || !strings.Contains(body, "Ownership Deep Dive") {
		t.Error("expected 2022 posts")
	}
	if strings.Contains(body, "Hello 2021") {
		t.Error("did not expect 2021 post under year=2022")
	}
	if !strings.Contains(body, "Reset filters") {
		t.Error("expected reset link with an active filter")
	}
	// Reselecting the active year links back to the bare path.
	if !strings.Contains(body, `class="facet-value selected" href="/blog"`) {
		t.Error("expected selected year to toggle off")
	}
	// The active year is carried by the search form.
	if !strings.Contains(body, `name="year" value="2022"`) {
		t.Error("expected hidden year field")
	}
}

func TestHandleListing_QueryAndEmptyState(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/blog?q=nothing-matches", nil)
	rec := httptest.NewRecorder()
	h.HandleListing(content.ListingBlog)(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Nothing matches these filters.") {
		t.Error("expected empty state message")
	}
	if !strings.Contains(body, `value="nothing-matches"`) {
		t.Error("expected query echoed in search box")
	}
}

func TestHandleListing_UnsupportedFacetIgnored(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/blog?skill=Go", nil)
	rec := httptest.NewRecorder()
	h.HandleListing(content.ListingBlog)(rec, req)

	if !strings.Contains(rec.Body.String(), "Hello 2021") {
		t.Error("skill should not filter the blog")
	}
}

func TestHandleListing_HtmxReturnsContentOnly(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/talk", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleListing(content.ListingTalk)(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("htmx response should not contain full layout")
	}
	if !strings.Contains(body, "Composable design") {
		t.Error("expected talk in content block")
	}
}

func TestHandleListing_HtmxTargetResults_ReturnsFragment(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/blog?q=rust", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "results")
	rec := httptest.NewRecorder()
	h.HandleListing(content.ListingBlog)(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, `<form class="search"`) {
		t.Error("results fragment should not re-render the search box")
	}
	if !strings.Contains(body, "Learning Rust Basics") {
		t.Error("expected matching post in fragment")
	}
	if strings.Contains(body, "Nuxt Content Tips") {
		t.Error("did not expect non-matching post in fragment")
	}
}

func TestHandleListing_JSON(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/blog?tag=Go", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleListing(content.ListingBlog)(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	var out struct {
		Count   int    `json:"count"`
		Total   int    `json:"total"`
		Address string `json:"address"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 2 || out.Total != 4 {
		t.Errorf("count/total = %d/%d, want 2/4", out.Count, out.Total)
	}
	if out.Address != "/blog?tag=Go" {
		t.Errorf("address = %q", out.Address)
	}
}

func TestHandleListing_CareerGroupsAndSkill(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/career?skill=Go", nil)
	rec := httptest.NewRecorder()
	h.HandleListing(content.ListingCareer)(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Startup") || strings.Contains(body, "<strong>Agency</strong>") {
		t.Error("expected only the Go career")
	}
	if !strings.Contains(body, `<h2 class="year">2021</h2>`) {
		t.Error("expected year group heading")
	}
	if !strings.Contains(body, "1 of 2 projects") {
		t.Error("expected project counts")
	}
}

func TestHandleListing_Tools(t *testing.T) {
	h := setupTest(t)

	rec := serve(h, httptest.NewRequest("GET", "/tools?type=math", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `href="/tools/`) {
		t.Error("expected tool links")
	}
}

// --- HandlePost ---

func TestHandlePost_Found(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/blog/rust-basics", nil)
	req.SetPathValue("slug", "rust-basics")
	rec := httptest.NewRecorder()
	h.HandlePost(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<strong>rules</strong>") {
		t.Error("expected markdown body rendered")
	}
	if !strings.Contains(body, `href="/blog?tag=Systems"`) {
		t.Error("expected tag link into the filtered listing")
	}
}

func TestHandlePost_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/blog/missing", nil)
	req.SetPathValue("slug", "missing")
	rec := httptest.NewRecorder()
	h.HandlePost(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// --- HandleTimeline ---

func TestHandleTimeline(t *testing.T) {
	h := setupTest(t)

	rec := serve(h, httptest.NewRequest("GET", "/career/timeline", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<svg class="gantt"`) {
		t.Error("expected gantt chart")
	}
	if strings.Count(body, `<rect class="bar"`) != 2 {
		t.Errorf("expected 2 bars, got %d", strings.Count(body, `<rect class="bar"`))
	}
}

func TestHandleTimeline_Empty(t *testing.T) {
	h := setupTest(t)
	h.lib.Careers = nil

	rec := serve(h, httptest.NewRequest("GET", "/career/timeline", nil))
	if !strings.Contains(rec.Body.String(), "No careers to show.") {
		t.Error("expected empty timeline message")
	}
}

// --- HandleTool ---

func TestHandleTool_Found(t *testing.T) {
	h := setupTest(t)
	tool := content.Tools()[0]

	req := httptest.NewRequest("GET", tool.Route, nil)
	req.SetPathValue("id", tool.ID)
	rec := httptest.NewRecorder()
	h.HandleTool(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), tool.Description) {
		t.Error("expected tool description")
	}
}

func TestHandleTool_NotFound_JSON(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/tools/nope", nil)
	req.SetPathValue("id", "nope")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleTool(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"]["code"] != "NOT_FOUND" {
		t.Errorf("code = %v, want NOT_FOUND", body["error"]["code"])
	}
}

// --- Error rendering ---

func TestErrorRendering_HtmxFragment(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/blog/missing", nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("slug", "missing")
	rec := httptest.NewRecorder()
	h.HandlePost(rec, req)

	body := rec.Body.String()
	if !strings.HasPrefix(body, `<div class="error-message">`) {
		t.Errorf("expected error fragment, got %q", body)
	}
}

func TestErrorRendering_FullErrorPage(t *testing.T) {
	h := setupTest(t)

	rec := serve(h, httptest.NewRequest("GET", "/tools/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") || !strings.Contains(body, "<h1>404</h1>") {
		t.Error("expected full error page")
	}
}

// --- Middleware ---

func TestSecurityHeaders(t *testing.T) {
	h := setupTest(t)

	rec := serve(h, httptest.NewRequest("GET", "/", nil))
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("expected X-Frame-Options: DENY")
	}
	if !strings.Contains(rec.Header().Get("Content-Security-Policy"), "script-src 'self'") {
		t.Error("expected CSP header")
	}
}

func TestStaticAssets(t *testing.T) {
	h := setupTest(t)

	rec := serve(h, httptest.NewRequest("GET", "/static/app.js", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("static assets should not set the visitor cookie")
	}
}

func TestEncounters_FirstVisitSetsCookieAndFooter(t *testing.T) {
	h := setupTest(t)

	rec := serve(h, httptest.NewRequest("GET", "/blog?at=a+meetup", nil))
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != VisitorCookie {
		t.Fatalf("cookies = %v, want %s", cookies, VisitorCookie)
	}
	today := time.Now().UTC().Format("2006/01/02")
	want := "first encountered a meetup on " + today
	if !strings.Contains(rec.Body.String(), want) {
		t.Errorf("expected footer %q", want)
	}

	// A returning visitor keeps the original label.
	req := httptest.NewRequest("GET", "/talk?at=elsewhere", nil)
	req.AddCookie(cookies[0])
	rec = serve(h, req)
	if len(rec.Result().Cookies()) != 0 {
		t.Error("returning visitor should not get a new cookie")
	}
	if !strings.Contains(rec.Body.String(), want) {
		t.Errorf("expected footer %q on revisit", want)
	}
}

func TestEncounters_MalformedCookieReplaced(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "not-a-ulid"})
	rec := serve(h, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value == "not-a-ulid" {
		t.Errorf("cookies = %v, want a fresh visitor id", cookies)
	}
	if !strings.Contains(rec.Body.String(), "first encountered in a web search") {
		t.Error("expected default referral label")
	}
}

func TestEncounters_RateLimitedFallsBackToRead(t *testing.T) {
	h := setupTest(t)
	h.limiter = rate.NewLimiter(0, 0)

	rec := serve(h, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "first encountered") {
		t.Error("unknown visitor should have no footer when writes are limited")
	}
}

func TestEncounters_NilDBDisabled(t *testing.T) {
	h := setupTest(t)
	h.db = nil

	rec := serve(h, httptest.NewRequest("GET", "/", nil))
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no cookie expected without a database")
	}
}
