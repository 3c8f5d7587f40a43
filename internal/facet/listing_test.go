package facet

import (
	"net/url"
	"reflect"
	"testing"
)

type post struct {
	title       string
	description string
	created     string
	tags        []string
	kind        string
}

func (p post) Label() string { return p.title }

func (p post) SearchFields() []string {
	return append([]string{p.title, p.description}, p.tags...)
}

func (p post) PrimaryDate() string { return p.created }

func (p post) FacetValues(f Facet) []string {
	switch f {
	case Tag:
		return p.tags
	case Type:
		if p.kind == "" {
			return nil
		}
		return []string{p.kind}
	}
	return nil
}

var blogListing = Listing[post]{
	Name:   "blog",
	Path:   "/blog",
	Facets: []Facet{Year, Month, Tag},
}

func samplePosts() []post {
	return []post{
		{title: "Hello 2021", created: "2021/01/10", tags: []string{"Go"}},
		{title: "Learning Rust Basics", created: "2022-03-01", tags: []string{"Systems"}},
		{title: "Ownership Deep Dive", created: "2022/07", tags: []string{"Rust"}},
		{title: "Nuxt Content Tips", description: "frontmatter tricks", created: "2023-11-20T09:00:00Z", tags: []string{"Vue", "Go"}},
		{title: "Year in review", created: "2024/12/31"},
	}
}

func titles(items []post) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.title
	}
	return out
}

func TestFilter_YearSelection(t *testing.T) {
	posts := samplePosts()

	got := blogListing.Filter(posts, Criteria{}.Toggle(Year, "2022"))
	want := []string{"Learning Rust Basics", "Ownership Deep Dive"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Filter(year=2022) = %v, want %v", titles(got), want)
	}

	counts := blogListing.Summary(posts, Criteria{}, Year).Counts()
	if counts["2022"] != 2 {
		t.Errorf("count[2022] = %d, want 2", counts["2022"])
	}

	all := blogListing.Filter(posts, Criteria{})
	if len(all) != 5 {
		t.Errorf("reset filter len = %d, want 5", len(all))
	}
}

func TestFilter_QueryMatchesTitleAndTags(t *testing.T) {
	got := blogListing.Filter(samplePosts(), Criteria{Query: "rust"})
	want := []string{"Learning Rust Basics", "Ownership Deep Dive"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Filter(q=rust) = %v, want %v", titles(got), want)
	}
}

func TestFilter_QueryMatchesDescription(t *testing.T) {
	got := blogListing.Filter(samplePosts(), Criteria{Query: "  FRONTMATTER "})
	if len(got) != 1 || got[0].title != "Nuxt Content Tips" {
		t.Errorf("Filter(q=FRONTMATTER) = %v", titles(got))
	}
}

func TestFilter_AndCombination(t *testing.T) {
	posts := samplePosts()

	got := blogListing.Filter(posts, Criteria{Tag: "Go", Year: "2023"})
	if len(got) != 1 || got[0].title != "Nuxt Content Tips" {
		t.Errorf("Filter(tag=Go, year=2023) = %v", titles(got))
	}

	got = blogListing.Filter(posts, Criteria{Tag: "Go", Year: "2024"})
	if len(got) != 0 {
		t.Errorf("Filter(tag=Go, year=2024) = %v, want empty", titles(got))
	}
}

func TestFilter_TagIsExactMembership(t *testing.T) {
	got := blogListing.Filter(samplePosts(), Criteria{Tag: "go"})
	if len(got) != 0 {
		t.Errorf("tag filter should be case-sensitive exact match, got %v", titles(got))
	}
}

func TestFilter_Month(t *testing.T) {
	got := blogListing.Filter(samplePosts(), Criteria{Year: "2022", Month: "07"})
	if len(got) != 1 || got[0].title != "Ownership Deep Dive" {
		t.Errorf("Filter(2022/07) = %v", titles(got))
	}
}

func TestFilter_EmptyCollection(t *testing.T) {
	got := blogListing.Filter(nil, Criteria{Query: "x", Year: "2020"})
	if got == nil || len(got) != 0 {
		t.Errorf("Filter(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestFilter_UnparseableDateNeverMatchesYear(t *testing.T) {
	posts := []post{
		{title: "broken", created: "someday"},
		{title: "missing"},
		{title: "ok", created: "2020/05"},
	}

	got := blogListing.Filter(posts, Criteria{Year: "2020"})
	if !reflect.DeepEqual(titles(got), []string{"ok"}) {
		t.Errorf("Filter(year=2020) = %v, want [ok]", titles(got))
	}

	// Without a year filter the broken items are still listed.
	if n := len(blogListing.Filter(posts, Criteria{})); n != 3 {
		t.Errorf("unfiltered len = %d, want 3", n)
	}
}

func TestFilter_SortStableByDateDesc(t *testing.T) {
	l := Listing[post]{Name: "slides", Path: "/slides", Facets: []Facet{Year}, Sort: ByDateDesc[post]}
	posts := []post{
		{title: "a", created: "2021/01"},
		{title: "undated"},
		{title: "b", created: "2023/01"},
		{title: "c", created: "2021/01"},
	}

	got := titles(l.Filter(posts, Criteria{}))
	want := []string{"b", "a", "c", "undated"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}

	// The input slice is untouched.
	if posts[0].title != "a" || posts[1].title != "undated" {
		t.Errorf("Filter mutated its input: %v", titles(posts))
	}
}

func TestSummary_YearOrderAndCounts(t *testing.T) {
	s := blogListing.Summary(samplePosts(), Criteria{}, Year)

	want := []Count{{"2024", 1}, {"2023", 1}, {"2022", 2}, {"2021", 1}}
	if !reflect.DeepEqual(s.Values, want) {
		t.Errorf("year summary = %v, want %v", s.Values, want)
	}
}

func TestSummary_CountsRespectOtherCriteria(t *testing.T) {
	s := blogListing.Summary(samplePosts(), Criteria{Tag: "Go"}, Year)
	counts := s.Counts()

	if counts["2021"] != 1 || counts["2023"] != 1 {
		t.Errorf("counts = %v, want 2021:1 2023:1", counts)
	}
	if counts["2022"] != 0 {
		t.Errorf("counts[2022] = %d, want 0 under tag=Go", counts["2022"])
	}
	// Values still come from the full collection.
	if len(s.Values) != 4 {
		t.Errorf("len(values) = %d, want 4", len(s.Values))
	}
}

func TestSummary_CountIgnoresOwnSelection(t *testing.T) {
	s := blogListing.Summary(samplePosts(), Criteria{Year: "2022"}, Year)
	if s.Selected != "2022" {
		t.Errorf("Selected = %q, want 2022", s.Selected)
	}
	if s.Counts()["2021"] != 1 {
		t.Errorf("count[2021] = %d, want 1 with 2022 selected", s.Counts()["2021"])
	}
}

func TestSummary_YearCountsUnderSelectedMonth(t *testing.T) {
	posts := []post{
		{title: "March", created: "2022/03/01"},
		{title: "May", created: "2023/05/01"},
	}
	c := Criteria{Year: "2022", Month: "03"}

	counts := blogListing.Summary(posts, c, Year).Counts()
	for _, year := range []string{"2022", "2023"} {
		want := len(blogListing.Filter(posts, c.Toggle(Year, year)))
		if year == c.Year {
			want = len(blogListing.Filter(posts, c))
		}
		if counts[year] != want {
			t.Errorf("count[%s] = %d, want %d", year, counts[year], want)
		}
	}
	if counts["2023"] != 1 {
		t.Errorf("count[2023] = %d, want 1 once the month is dropped", counts["2023"])
	}
}

func TestSummary_TagsAlphabetical(t *testing.T) {
	s := blogListing.Summary(samplePosts(), Criteria{}, Tag)
	var got []string
	for _, v := range s.Values {
		got = append(got, v.Value)
	}
	want := []string{"Go", "Rust", "Systems", "Vue"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
	if s.Counts()["Go"] != 2 {
		t.Errorf("count[Go] = %d, want 2", s.Counts()["Go"])
	}
}

func TestSummary_MonthRequiresYear(t *testing.T) {
	s := blogListing.Summary(samplePosts(), Criteria{}, Month)
	if len(s.Values) != 0 {
		t.Errorf("month values without year = %v, want none", s.Values)
	}

	s = blogListing.Summary(samplePosts(), Criteria{Year: "2022"}, Month)
	want := []Count{{"03", 1}, {"07", 1}}
	if !reflect.DeepEqual(s.Values, want) {
		t.Errorf("months in 2022 = %v, want %v", s.Values, want)
	}
}

func TestSummary_KnownValuesWithZeroCount(t *testing.T) {
	l := Listing[post]{
		Name:   "talk",
		Facets: []Facet{Type},
		Known:  map[Facet][]string{Type: {"meetup", "conference"}},
	}
	posts := []post{{title: "x", kind: "webinar"}, {title: "y", kind: "meetup"}}

	s := l.Summary(posts, Criteria{}, Type)
	want := []Count{{"conference", 0}, {"meetup", 1}, {"webinar", 1}}
	if !reflect.DeepEqual(s.Values, want) {
		t.Errorf("type summary = %v, want %v", s.Values, want)
	}
}

func TestSummaries_OnePerFacet(t *testing.T) {
	got := blogListing.Summaries(samplePosts(), Criteria{})
	if len(got) != 3 {
		t.Fatalf("len(Summaries) = %d, want 3", len(got))
	}
	for i, f := range blogListing.Facets {
		if got[i].Facet != f {
			t.Errorf("Summaries[%d].Facet = %v, want %v", i, got[i].Facet, f)
		}
	}
}

func TestListingCriteria_IgnoresUnsupportedKeys(t *testing.T) {
	v := url.Values{"q": {"rust"}, "year": {"2022"}, "skill": {"Go"}}
	c := blogListing.Criteria(v)

	if c.Query != "rust" || c.Year != "2022" {
		t.Errorf("Criteria = %+v", c)
	}
	if c.Skill != "" {
		t.Errorf("Skill = %q, want ignored for blog", c.Skill)
	}
}
