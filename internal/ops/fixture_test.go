package ops

import (
	"github.com/hpungsan/folio/internal/content"
)

func testLibrary() *content.Library {
	return &content.Library{
		Blog: []content.BlogPost{
			{Slug: "hello", Title: "Hello 2021", Created: "2021/01/10", Tags: []string{"Go"}},
			{Slug: "rust-basics", Title: "Learning Rust Basics", Created: "2022/03/01", Tags: []string{"Systems"}},
			{Slug: "ownership", Title: "Ownership", Created: "2022/07/04", Tags: []string{"Rust"}},
			{Slug: "nuxt", Title: "Nuxt Content Tips", Created: "2023/11/20", Tags: []string{"Vue"}},
			{Slug: "review", Title: "Year in review", Created: "2024/12/31"},
		},
		Talks: []content.Talk{
			{Slug: "vuefes", Title: "Composable design", EventName: "Vue Fes", EventDate: "2023/10/28", Type: content.TalkConference, Tags: []string{"Vue"}},
		},
		Careers: []content.Career{
			{Code: "agency", Title: "Agency", DateStart: "2018/04", DateEnd: "2020/12", Projects: []content.Project{
				{Title: "Shop", Stacks: []string{"PHP"}},
			}},
			{Code: "startup", Title: "Startup", DateStart: "2021/01", Projects: []content.Project{
				{Title: "Dashboard", Stacks: []string{"Go", "Vue"}},
				{Title: "CLI", Stacks: []string{"Go"}},
			}},
		},
		Slides: []content.Slide{
			{Slug: "intro", Title: "Intro", Date: "2023-05-01"},
		},
		Stack: []content.Technology{
			{ID: "go", Name: "Go", Category: "language"},
		},
		Categories: []content.StackCategory{{ID: "language", Name: "Languages"}},
	}
}
