package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/folio/internal/facet"
)

// decode unmarshals MCP request arguments into a typed struct.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	b, err := json.Marshal(req.GetArguments())
	if err != nil {
		return result, fmt.Errorf("marshal args: %w", err)
	}
	if err := json.Unmarshal(b, &result); err != nil {
		return result, fmt.Errorf("unmarshal args: %w", err)
	}
	return result, nil
}

// FilterArgs are the criteria arguments shared by the filtering tools.
type FilterArgs struct {
	Query string `json:"q,omitempty"`
	Year  string `json:"year,omitempty"`
	Month string `json:"month,omitempty"`
	Tag   string `json:"tag,omitempty"`
	Type  string `json:"type,omitempty"`
	Skill string `json:"skill,omitempty"`
}

// Criteria converts the arguments. Facets the listing does not support are
// dropped by the operation, not here.
func (a FilterArgs) Criteria() facet.Criteria {
	return facet.Criteria{
		Query: a.Query,
		Year:  a.Year,
		Month: a.Month,
		Tag:   a.Tag,
		Type:  a.Type,
		Skill: a.Skill,
	}
}
