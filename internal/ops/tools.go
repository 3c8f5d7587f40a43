package ops

import (
	"strings"

	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/errors"
)

// ToolLookupOutput contains the result of the ToolLookup operation.
type ToolLookupOutput struct {
	Tool     content.Tool         `json:"tool"`
	Category content.ToolCategory `json:"category"`
	Related  []content.Tool       `json:"related"`
}

// ToolLookup finds a catalog tool and the other tools of its category.
func ToolLookup(id string) (*ToolLookupOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	tool, ok := content.ToolByID(id)
	if !ok {
		return nil, errors.NewNotFound("tool", id)
	}

	out := &ToolLookupOutput{Tool: tool, Related: []content.Tool{}}
	for _, c := range content.ToolCategories() {
		if c.ID == tool.Category {
			out.Category = c
		}
	}
	for _, t := range content.ToolsByCategory(tool.Category) {
		if t.ID != tool.ID {
			out.Related = append(out.Related, t)
		}
	}
	return out, nil
}
