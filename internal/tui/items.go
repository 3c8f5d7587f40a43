package tui

import (
	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/facet"
)

// rows renders the items of a list result, one line each.
func rows(items any) []string {
	switch v := items.(type) {
	case []content.BlogPost:
		return rowsOf(v)
	case []content.Talk:
		return rowsOf(v)
	case []content.Career:
		return rowsOf(v)
	case []content.Slide:
		return rowsOf(v)
	case []content.Technology:
		return rowsOf(v)
	case []content.Tool:
		return rowsOf(v)
	}
	return nil
}

func rowsOf[T facet.Item](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label()
		if d := it.PrimaryDate(); d != "" {
			out[i] += "  " + mutedStyle.Render(d)
		}
	}
	return out
}
