package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/folio/internal/content"
)

var listToolDef = mcp.NewTool("content_list",
	mcp.WithDescription("Filter one portfolio listing by free text and facets. "+
		"Returns the matching items, the facet values with their counts, and the address of the filtered page."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("listing",
		mcp.Required(),
		mcp.Description("Listing to filter"),
		mcp.Enum(content.ListingNames...),
	),
	mcp.WithString("q", mcp.Description("Case-insensitive substring matched against titles, descriptions and tags")),
	mcp.WithString("year", mcp.Description("Four-digit year of the item's primary date")),
	mcp.WithString("month", mcp.Description("Two-digit month, only meaningful with year")),
	mcp.WithString("tag", mcp.Description("Exact tag (blog, talk)")),
	mcp.WithString("type", mcp.Description("Talk type, stack category or tool category")),
	mcp.WithString("skill", mcp.Description("Project stack used during a career")),
	mcp.WithNumber("limit", mcp.Description("Max items (default: all, max: 100)")),
	mcp.WithNumber("offset", mcp.Description("Items to skip")),
)

var timelineToolDef = mcp.NewTool("career_timeline",
	mcp.WithDescription("Lay out careers as a gantt chart. Positions are percentages of the chart width, newest year on the left."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("q", mcp.Description("Free-text filter on career and project text")),
	mcp.WithString("year", mcp.Description("Start year filter")),
	mcp.WithString("skill", mcp.Description("Project stack filter")),
	mcp.WithString("now", mcp.Description("Reference date for open careers, YYYY-MM-DD (default: today)")),
)

var lookupToolDef = mcp.NewTool("tool_lookup",
	mcp.WithDescription("Look up a catalog tool by id, with the other tools of its category."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("id", mcp.Required(), mcp.Description("Tool id, e.g. color-palette")),
)

var statsToolDef = mcp.NewTool("encounter_stats",
	mcp.WithDescription("Count recorded visitors by where they first came from."),
	mcp.WithReadOnlyHintAnnotation(true),
)
