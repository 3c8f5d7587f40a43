// Package content defines the portfolio content variants and the listings
// that filter them.
package content

import (
	"slices"

	"github.com/hpungsan/folio/internal/facet"
	"github.com/hpungsan/folio/internal/gantt"
)

// BlogPost is a markdown article.
type BlogPost struct {
	Slug        string   `yaml:"-" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Created     string   `yaml:"created" json:"created"`
	Updated     string   `yaml:"updated" json:"updated,omitempty"`
	Image       string   `yaml:"image" json:"image,omitempty"`
	Tags        []string `yaml:"tags" json:"tags"`
	Icons       []string `yaml:"icons" json:"icons,omitempty"`
	Draft       bool     `yaml:"draft" json:"-"`

	// Body is the markdown after the front matter.
	Body string `yaml:"-" json:"-"`
}

func (p BlogPost) Label() string       { return p.Title }
func (p BlogPost) PrimaryDate() string { return p.Created }

func (p BlogPost) SearchFields() []string {
	return append([]string{p.Title, p.Description}, p.Tags...)
}

func (p BlogPost) FacetValues(f facet.Facet) []string {
	if f == facet.Tag {
		return p.Tags
	}
	return nil
}

// Href is the post's page address.
func (p BlogPost) Href() string { return "/blog/" + p.Slug }

// Talk types.
const (
	TalkConference = "conference"
	TalkMeetup     = "meetup"
	TalkWebinar    = "webinar"
	TalkWorkshop   = "workshop"
	TalkOther      = "other"
)

// TalkTypes lists every talk type in display order.
var TalkTypes = []string{TalkConference, TalkMeetup, TalkWebinar, TalkWorkshop, TalkOther}

// Talk is a presentation given at an event.
type Talk struct {
	Slug        string   `yaml:"-" json:"slug"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description,omitempty"`
	EventName   string   `yaml:"event_name" json:"event_name"`
	EventDate   string   `yaml:"event_date" json:"event_date"`
	Location    string   `yaml:"location" json:"location,omitempty"`
	Type        string   `yaml:"type" json:"type"`
	SlidesURL   string   `yaml:"slides_url" json:"slides_url,omitempty"`
	VideoURL    string   `yaml:"video_url" json:"video_url,omitempty"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
	Draft       bool     `yaml:"draft" json:"-"`
}

func (t Talk) Label() string       { return t.Title }
func (t Talk) PrimaryDate() string { return t.EventDate }

func (t Talk) SearchFields() []string {
	return append([]string{t.Title, t.Description, t.EventName}, t.Tags...)
}

func (t Talk) FacetValues(f facet.Facet) []string {
	switch f {
	case facet.Tag:
		return t.Tags
	case facet.Type:
		if t.Type != "" {
			return []string{t.Type}
		}
	}
	return nil
}

// Link is a labelled external URL.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Project is work done during a career entry.
type Project struct {
	Slug        string   `yaml:"-" json:"slug"`
	CareerCode  string   `yaml:"career_unique_code" json:"career_code"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Status      string   `yaml:"status" json:"status,omitempty"`
	Role        string   `yaml:"role" json:"role,omitempty"`
	Team        string   `yaml:"team" json:"team,omitempty"`
	Stacks      []string `yaml:"stacks" json:"stacks"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
	PeriodStart string   `yaml:"period_start" json:"period_start,omitempty"`
	PeriodEnd   string   `yaml:"period_end" json:"period_end,omitempty"`
	Pinned      bool     `yaml:"pinned" json:"pinned,omitempty"`
	Links       []Link   `yaml:"links" json:"links,omitempty"`
	Draft       bool     `yaml:"draft" json:"-"`
}

// Career is one employment or engagement, with the projects done during it.
type Career struct {
	Code        string    `yaml:"unique_code" json:"code"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description,omitempty"`
	DateStart   string    `yaml:"date_start" json:"date_start"`
	DateEnd     string    `yaml:"date_end" json:"date_end,omitempty"`
	Link        string    `yaml:"link" json:"link,omitempty"`
	Tags        []string  `yaml:"tags" json:"tags,omitempty"`
	Draft       bool      `yaml:"draft" json:"-"`
	Projects    []Project `yaml:"-" json:"projects"`
}

func (c Career) Label() string       { return c.Title }
func (c Career) PrimaryDate() string { return c.DateStart }

// SearchFields covers the career and the titles and descriptions of its projects.
func (c Career) SearchFields() []string {
	fields := []string{c.Title, c.Description}
	for _, p := range c.Projects {
		fields = append(fields, p.Title, p.Description)
	}
	return fields
}

// FacetValues reports the union of project stacks as the career's skills.
func (c Career) FacetValues(f facet.Facet) []string {
	if f != facet.Skill {
		return nil
	}
	var skills []string
	for _, p := range c.Projects {
		for _, s := range p.Stacks {
			if !slices.Contains(skills, s) {
				skills = append(skills, s)
			}
		}
	}
	return skills
}

// Span is the career's date range on the timeline.
func (c Career) Span() gantt.Span {
	return gantt.Span{Start: c.DateStart, End: c.DateEnd}
}

// Slide is a published slide deck.
type Slide struct {
	Slug        string `yaml:"-" json:"slug"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description,omitempty"`
	Date        string `yaml:"date" json:"date"`
	URL         string `yaml:"url" json:"url,omitempty"`
	Draft       bool   `yaml:"draft" json:"-"`
}

func (s Slide) Label() string                    { return s.Title }
func (s Slide) PrimaryDate() string              { return s.Date }
func (s Slide) SearchFields() []string           { return []string{s.Title, s.Description} }
func (s Slide) FacetValues(facet.Facet) []string { return nil }

// Technology is one entry of the technology stack.
type Technology struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Type        string   `json:"type,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Link        string   `json:"link,omitempty"`
	Proficiency int      `json:"proficiency,omitempty"`

	// TagNames are the display names of Tags, resolved at load time.
	TagNames []string `json:"tag_names,omitempty"`
}

func (t Technology) Label() string       { return t.Name }
func (t Technology) PrimaryDate() string { return "" }

// SearchFields matches on the name and the resolved tag names.
func (t Technology) SearchFields() []string {
	return append([]string{t.Name}, t.TagNames...)
}

// Kind is the explicit type, falling back to the category.
func (t Technology) Kind() string {
	if t.Type != "" {
		return t.Type
	}
	return t.Category
}

func (t Technology) FacetValues(f facet.Facet) []string {
	if f == facet.Type {
		if k := t.Kind(); k != "" {
			return []string{k}
		}
	}
	return nil
}

// StackCategory groups technologies.
type StackCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
}

// StackTag labels technologies.
type StackTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
