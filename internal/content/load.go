package content

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hpungsan/folio/internal/errors"
)

// Library is every content collection loaded from one directory.
type Library struct {
	Blog       []BlogPost
	Talks      []Talk
	Careers    []Career
	Slides     []Slide
	Stack      []Technology
	Categories []StackCategory
	Tags       []StackTag
}

// Post finds a blog post by slug.
func (l *Library) Post(slug string) (BlogPost, bool) {
	for _, p := range l.Blog {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// Content subdirectories and files under the library root.
const (
	blogDir      = "blog"
	talkDir      = "talk"
	careerDir    = "career"
	projectDir   = "project"
	slidesDir    = "slides"
	stackDir     = "stack"
	techFile     = "technologies.json"
	categoryFile = "categories.json"
	tagFile      = "tags.json"
)

// Load reads the library rooted at dir. Missing directories and files yield
// empty collections; drafts are skipped.
func Load(dir string) (*Library, error) {
	lib := &Library{}
	var err error

	if lib.Blog, err = loadMarkdown(filepath.Join(dir, blogDir), func(p *BlogPost, slug, body string) bool {
		p.Slug, p.Body = slug, body
		return !p.Draft
	}); err != nil {
		return nil, err
	}
	if lib.Talks, err = loadMarkdown(filepath.Join(dir, talkDir), func(t *Talk, slug, _ string) bool {
		t.Slug = slug
		return !t.Draft
	}); err != nil {
		return nil, err
	}
	if lib.Slides, err = loadMarkdown(filepath.Join(dir, slidesDir), func(s *Slide, slug, _ string) bool {
		s.Slug = slug
		return !s.Draft
	}); err != nil {
		return nil, err
	}
	if lib.Careers, err = loadMarkdown(filepath.Join(dir, careerDir), func(c *Career, _, _ string) bool {
		return !c.Draft
	}); err != nil {
		return nil, err
	}

	projects, err := loadMarkdown(filepath.Join(dir, projectDir), func(p *Project, slug, _ string) bool {
		p.Slug = slug
		return !p.Draft
	})
	if err != nil {
		return nil, err
	}
	attachProjects(lib.Careers, projects)

	if err := lib.loadStack(filepath.Join(dir, stackDir)); err != nil {
		return nil, err
	}
	return lib, nil
}

// attachProjects gives each career the projects referencing its code.
func attachProjects(careers []Career, projects []Project) {
	for i := range careers {
		careers[i].Projects = []Project{}
		for _, p := range projects {
			if p.CareerCode != "" && p.CareerCode == careers[i].Code {
				careers[i].Projects = append(careers[i].Projects, p)
			}
		}
	}
}

// loadMarkdown parses every .md file of dir in name order. keep sets derived
// fields and reports whether the item belongs in the collection.
func loadMarkdown[T any](dir string, keep func(item *T, slug, body string) bool) ([]T, error) {
	out := []T{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return out, nil
		}
		return nil, errors.NewInternal(fmt.Errorf("failed to read %s: %w", dir, err))
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewInternal(fmt.Errorf("failed to read %s: %w", path, err))
		}

		var item T
		body, err := parseFrontmatter(string(data), &item)
		if err != nil {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("%s: %v", path, err))
		}
		if keep(&item, strings.TrimSuffix(e.Name(), ".md"), body) {
			out = append(out, item)
		}
	}
	return out, nil
}

// parseFrontmatter decodes the YAML block delimited by "---" lines into v and
// returns the remaining body.
func parseFrontmatter(content string, v any) (string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, "---\n") {
		return "", fmt.Errorf("no frontmatter delimiter found")
	}

	rest := content[4:]
	idx := strings.Index(rest, "\n---\n")
	var body string
	switch {
	case idx >= 0:
		body = strings.TrimLeft(rest[idx+5:], "\n")
	case strings.HasSuffix(rest, "\n---"):
		idx = len(rest) - 4
	default:
		return "", fmt.Errorf("no closing frontmatter delimiter found")
	}

	if err := yaml.Unmarshal([]byte(rest[:idx]), v); err != nil {
		return "", fmt.Errorf("unmarshaling frontmatter: %w", err)
	}
	return body, nil
}

func (l *Library) loadStack(dir string) error {
	techs := map[string]Technology{}
	if err := readJSON(filepath.Join(dir, techFile), &techs); err != nil {
		return err
	}
	categories := map[string]StackCategory{}
	if err := readJSON(filepath.Join(dir, categoryFile), &categories); err != nil {
		return err
	}
	tags := []StackTag{}
	if err := readJSON(filepath.Join(dir, tagFile), &tags); err != nil {
		return err
	}

	tagNames := make(map[string]string, len(tags))
	for _, t := range tags {
		tagNames[t.ID] = t.Name
	}

	l.Stack = make([]Technology, 0, len(techs))
	for id, t := range techs {
		t.ID = id
		t.TagNames = nil
		for _, tagID := range t.Tags {
			if name, ok := tagNames[tagID]; ok {
				t.TagNames = append(t.TagNames, name)
			}
		}
		l.Stack = append(l.Stack, t)
	}
	slices.SortFunc(l.Stack, func(a, b Technology) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	l.Categories = make([]StackCategory, 0, len(categories))
	for id, c := range categories {
		c.ID = id
		l.Categories = append(l.Categories, c)
	}
	slices.SortFunc(l.Categories, func(a, b StackCategory) int {
		return strings.Compare(a.ID, b.ID)
	})

	l.Tags = tags
	return nil
}

// readJSON decodes path into v, leaving v untouched when path does not exist.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.NewInternal(fmt.Errorf("failed to read %s: %w", path, err))
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.NewInvalidRequest(fmt.Sprintf("%s: %v", path, err))
	}
	return nil
}
