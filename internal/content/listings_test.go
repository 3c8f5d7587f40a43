package content

import (
	"reflect"
	"testing"

	"github.com/hpungsan/folio/internal/facet"
)

func sampleCareers() []Career {
	return []Career{
		{Code: "a", Title: "Agency", DateStart: "2018/04", DateEnd: "2020/01", Projects: []Project{
			{Title: "Shop", Stacks: []string{"PHP", "Vue"}},
		}},
		{Code: "b", Title: "Startup", DateStart: "2021/02", Projects: []Project{
			{Title: "Realtime dashboard", Description: "websocket feeds", Stacks: []string{"Go", "Vue"}},
			{Title: "CLI", Stacks: []string{"Go"}},
		}},
		{Code: "c", Title: "Freelance", DateStart: "2021/09", DateEnd: "2022/01"},
	}
}

func careerTitles(cs []Career) []string {
	var out []string
	for _, c := range cs {
		out = append(out, c.Title)
	}
	return out
}

func TestCareerListing_SortAndSkill(t *testing.T) {
	got := CareerListing.Filter(sampleCareers(), facet.Criteria{})
	want := []string{"Freelance", "Startup", "Agency"}
	if !reflect.DeepEqual(careerTitles(got), want) {
		t.Errorf("order = %v, want %v", careerTitles(got), want)
	}

	got = CareerListing.Filter(sampleCareers(), facet.Criteria{Skill: "Vue"})
	if want := []string{"Startup", "Agency"}; !reflect.DeepEqual(careerTitles(got), want) {
		t.Errorf("skill=Vue = %v, want %v", careerTitles(got), want)
	}

	skills := CareerListing.Summary(sampleCareers(), facet.Criteria{}, facet.Skill).Counts()
	if skills["Go"] != 1 || skills["Vue"] != 2 || skills["PHP"] != 1 {
		t.Errorf("skill counts = %v", skills)
	}
}

func TestCareer_SearchesProjects(t *testing.T) {
	got := CareerListing.Filter(sampleCareers(), facet.Criteria{Query: "WebSocket"})
	if len(got) != 1 || got[0].Code != "b" {
		t.Errorf("q=WebSocket = %v", careerTitles(got))
	}
}

func TestGroupByYear(t *testing.T) {
	careers := append(CareerListing.Filter(sampleCareers(), facet.Criteria{}), Career{Title: "Mystery", DateStart: "tbd"})
	groups := GroupByYear(careers)

	var years []string
	for _, g := range groups {
		years = append(years, g.Year)
	}
	if want := []string{"2021", "2018", ""}; !reflect.DeepEqual(years, want) {
		t.Fatalf("years = %v, want %v", years, want)
	}
	if want := []string{"Freelance", "Startup"}; !reflect.DeepEqual(careerTitles(groups[0].Careers), want) {
		t.Errorf("2021 = %v, want %v", careerTitles(groups[0].Careers), want)
	}
	if ProjectCount(careers) != 3 {
		t.Errorf("ProjectCount = %d, want 3", ProjectCount(careers))
	}
}

func TestTalkListing_KnownTypes(t *testing.T) {
	talks := []Talk{
		{Title: "Intro to Nuxt", EventName: "Vue Fes", EventDate: "2023/10/28", Type: TalkConference},
		{Title: "Lightning", EventName: "Go meetup", EventDate: "2024/02/01", Type: TalkMeetup, Tags: []string{"Go"}},
	}

	s := TalkListing.Summary(talks, facet.Criteria{}, facet.Type)
	if len(s.Values) != len(TalkTypes) {
		t.Errorf("type values = %v, want all %d known types", s.Values, len(TalkTypes))
	}
	if c := s.Counts(); c[TalkWorkshop] != 0 || c[TalkMeetup] != 1 {
		t.Errorf("type counts = %v", c)
	}

	got := TalkListing.Filter(talks, facet.Criteria{Query: "vue fes"})
	if len(got) != 1 || got[0].Title != "Intro to Nuxt" {
		t.Errorf("q=vue fes matched %v", got)
	}
}

func TestStackListing_TypeFallsBackToCategory(t *testing.T) {
	lib := &Library{
		Stack: []Technology{
			{ID: "go", Name: "Go", Category: "language", TagNames: []string{"Server side"}},
			{ID: "vue", Name: "Vue", Category: "framework", Type: "frontend"},
		},
		Categories: []StackCategory{{ID: "framework"}, {ID: "frontend"}, {ID: "language"}},
	}
	l := lib.StackListing()

	got := l.Filter(lib.Stack, facet.Criteria{Type: "frontend"})
	if len(got) != 1 || got[0].ID != "vue" {
		t.Errorf("type=frontend = %v", got)
	}
	if c := l.Summary(lib.Stack, facet.Criteria{}, facet.Type).Counts(); c["framework"] != 0 || c["language"] != 1 {
		t.Errorf("type counts = %v", c)
	}
	if got := l.Filter(lib.Stack, facet.Criteria{Query: "server"}); len(got) != 1 || got[0].ID != "go" {
		t.Errorf("q=server = %v", got)
	}
}

func TestSlideListing_DateDesc(t *testing.T) {
	slides := []Slide{{Title: "old", Date: "2020-05-01"}, {Title: "new", Date: "2024-01-15"}, {Title: "undated"}}
	got := SlideListing.Filter(slides, facet.Criteria{})
	if got[0].Title != "new" || got[2].Title != "undated" {
		t.Errorf("order = %v", got)
	}
}

func TestTools(t *testing.T) {
	tool, ok := ToolByID("jwt-decoder")
	if !ok || tool.Category != "dev" || tool.Route != "/tools/jwt-decoder" {
		t.Errorf("ToolByID(jwt-decoder) = %+v, %v", tool, ok)
	}
	if _, ok := ToolByID("nope"); ok {
		t.Error("ToolByID(nope) ok = true")
	}
	if n := len(ToolsByCategory("math")); n != 1 {
		t.Errorf("math tools = %d, want 1", n)
	}
	if got := ToolsByCategory("unknown"); got == nil || len(got) != 0 {
		t.Errorf("unknown category = %#v, want empty", got)
	}

	all := Tools()
	all[0].Name = "mutated"
	if Tools()[0].Name == "mutated" {
		t.Error("Tools() exposes the catalog")
	}

	got := ToolListing.Filter(Tools(), facet.Criteria{Type: "image", Query: "exif"})
	if len(got) != 1 || got[0].ID != "image-metadata-viewer" {
		t.Errorf("image + exif = %v", got)
	}
}

func TestFacetsOf(t *testing.T) {
	for _, name := range ListingNames {
		if _, ok := FacetsOf(name); !ok {
			t.Errorf("FacetsOf(%q) not found", name)
		}
	}
	if _, ok := FacetsOf("projects"); ok {
		t.Error("FacetsOf(projects) ok = true")
	}
}
