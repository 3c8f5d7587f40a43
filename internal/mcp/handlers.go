package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/errors"
	"github.com/hpungsan/folio/internal/facet"
	"github.com/hpungsan/folio/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	lib *content.Library
	db  *sql.DB
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(lib *content.Library, db *sql.DB) *Handlers {
	return &Handlers{lib: lib, db: db}
}

// ListRequest represents the arguments for content_list.
type ListRequest struct {
	FilterArgs
	Listing string `json:"listing"`
	Limit   int    `json:"limit,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

// TimelineRequest represents the arguments for career_timeline.
type TimelineRequest struct {
	FilterArgs
	Now string `json:"now,omitempty"`
}

// ToolLookupRequest represents the arguments for tool_lookup.
type ToolLookupRequest struct {
	ID string `json:"id"`
}

// HandleList handles the content_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.Listing == "" {
		return errorResult(errors.NewInvalidRequest("listing is required")), nil
	}

	result, err := ops.List(h.lib, ops.ListInput{
		Listing:  input.Listing,
		Criteria: input.Criteria(),
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTimeline handles the career_timeline tool call.
func (h *Handlers) HandleTimeline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TimelineRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	var now time.Time
	if s := strings.TrimSpace(input.Now); s != "" {
		t, ok := facet.ParseDate(s)
		if !ok {
			return errorResult(errors.NewInvalidRequest("now must be a date like 2024-03-15")), nil
		}
		now = t
	}

	result, err := ops.Timeline(h.lib, ops.TimelineInput{
		Criteria: input.Criteria(),
		Now:      now,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleToolLookup handles the tool_lookup tool call.
func (h *Handlers) HandleToolLookup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ToolLookupRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ToolLookup(input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleEncounterStats handles the encounter_stats tool call.
func (h *Handlers) HandleEncounterStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.db == nil {
		return errorResult(errors.NewInvalidRequest("encounter tracking is disabled")), nil
	}

	counts, err := ops.EncounterStats(ctx, h.db)
	if err != nil {
		return errorResult(err), nil
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return successResult(map[string]any{"by_where": counts, "visitors": total})
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var fErr *errors.FolioError
	if stderrors.As(err, &fErr) {
		errorObj := map[string]any{
			"code":    fErr.Code,
			"message": fErr.Message,
			"status":  fErr.Status,
		}
		if fErr.Code != errors.ErrInternal && fErr.Details != nil {
			errorObj["details"] = fErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	text, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(text)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
