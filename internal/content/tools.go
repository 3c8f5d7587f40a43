package content

import "github.com/hpungsan/folio/internal/facet"

// Tool is a browser utility listed in the tools catalog.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Route       string `json:"route"`
	Badge       string `json:"badge,omitempty"`
}

func (t Tool) Label() string          { return t.Name }
func (t Tool) PrimaryDate() string    { return "" }
func (t Tool) SearchFields() []string { return []string{t.Name, t.Description} }

func (t Tool) FacetValues(f facet.Facet) []string {
	if f == facet.Type {
		return []string{t.Category}
	}
	return nil
}

// ToolCategory describes one group of the catalog.
type ToolCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var toolCategories = []ToolCategory{
	{ID: "design", Name: "Design & UI", Description: "Color, layout and shadow tools"},
	{ID: "image", Name: "Image & Media", Description: "Conversion, compression, editing and metadata"},
	{ID: "text", Name: "Text & Documents", Description: "Generation, comparison and counting"},
	{ID: "converter", Name: "Converters", Description: "Data format conversion and encoding"},
	{ID: "dev", Name: "Development & Security", Description: "JSON, JWT, ID and password tools"},
	{ID: "math", Name: "Math", Description: "Number and unit calculators"},
}

var tools = []Tool{
	{ID: "color-palette", Name: "Color Palette Generator", Description: "Generate harmonious palettes with accessibility checks", Category: "design"},
	{ID: "gradient-maker", Name: "Gradient Maker", Description: "Build CSS and SVG gradients visually", Category: "design"},
	{ID: "shadow-generator", Name: "Shadow Generator", Description: "Tune box-shadow and text-shadow in real time", Category: "design"},
	{ID: "flexbox-playground", Name: "Flexbox Playground", Description: "Learn flexbox layouts interactively", Category: "design"},
	{ID: "grid-generator", Name: "CSS Grid Generator", Description: "Design grid layouts visually", Category: "design"},
	{ID: "image-format-converter", Name: "Image Editor", Description: "Batch format conversion, resizing and filters", Category: "image"},
	{ID: "image-compressor", Name: "Image Compressor", Description: "Shrink files for faster page loads", Category: "image"},
	{ID: "image-compare", Name: "Image Compare", Description: "Compare two images side by side", Category: "image"},
	{ID: "image-metadata-viewer", Name: "Image Metadata Viewer", Description: "Show and strip Exif data", Category: "image"},
	{ID: "sprite-sheet-generator", Name: "Sprite Sheet Generator", Description: "Pack images into one sheet with CSS", Category: "image"},
	{ID: "favicon-generator", Name: "Favicon Generator", Description: "Create favicons in every size", Category: "image"},
	{ID: "color-palette-extractor", Name: "Palette Extractor", Description: "Extract dominant colors from an image", Category: "image"},
	{ID: "base64-image", Name: "Base64 Image", Description: "Convert images to base64 data URIs", Category: "image"},
	{ID: "video-editor", Name: "Video Editor", Description: "Trim and compress short videos", Category: "image"},
	{ID: "lorem-ipsum", Name: "Lorem Ipsum", Description: "Placeholder text in several languages", Category: "text"},
	{ID: "character-counter", Name: "Character Counter", Description: "Count characters, bytes and lines live", Category: "text"},
	{ID: "regex-tester", Name: "Regex Tester", Description: "Test pattern matches live", Category: "text"},
	{ID: "diff-viewer", Name: "Diff Viewer", Description: "Show differences between two texts", Category: "text"},
	{ID: "csv-json-converter", Name: "CSV / JSON Converter", Description: "Convert between CSV and JSON both ways", Category: "converter"},
	{ID: "markdown-to-html", Name: "Markdown to HTML", Description: "Convert and preview markdown live", Category: "converter"},
	{ID: "json-to-typescript", Name: "JSON to TypeScript", Description: "Generate type definitions from JSON", Category: "converter"},
	{ID: "base64-encoder", Name: "Base64 Encoder", Description: "Encode and decode base64 text", Category: "converter"},
	{ID: "url-encoder", Name: "URL Encoder", Description: "Encode and decode URL parameters", Category: "converter"},
	{ID: "timestamp-converter", Name: "Timestamp Converter", Description: "Convert between Unix time and dates", Category: "converter"},
	{ID: "json-formatter", Name: "JSON Formatter", Description: "Validate and pretty-print JSON", Category: "dev"},
	{ID: "jwt-decoder", Name: "JWT Decoder", Description: "Decode tokens and verify signatures", Category: "dev"},
	{ID: "uuid-generator", Name: "UUID Generator", Description: "Create unique IDs in several formats", Category: "dev"},
	{ID: "password-generator", Name: "Password Generator", Description: "Generate strong passwords", Category: "dev"},
	{ID: "qr-code-generator", Name: "QR Code Generator", Description: "Encode text and URLs as QR codes", Category: "dev"},
	{ID: "cron-expression-builder", Name: "Cron Expression Builder", Description: "Build and explain cron schedules", Category: "dev"},
	{ID: "hash-generator", Name: "Hash Generator", Description: "Compute MD5 and SHA digests", Category: "dev", Badge: "New"},
	{ID: "yaml-json-converter", Name: "YAML / JSON Converter", Description: "Convert between YAML and JSON", Category: "converter", Badge: "New"},
	{ID: "color-contrast-checker", Name: "Contrast Checker", Description: "Check WCAG color contrast", Category: "design", Badge: "New"},
	{ID: "markdown-table-generator", Name: "Markdown Table Generator", Description: "Build markdown tables in a form", Category: "text", Badge: "New"},
	{ID: "number-base-converter", Name: "Number Base Converter", Description: "Convert between binary, octal, decimal and hex", Category: "math", Badge: "New"},
}

func init() {
	for i := range tools {
		tools[i].Route = "/tools/" + tools[i].ID
	}
}

// Tools returns a copy of the catalog in display order.
func Tools() []Tool {
	return append([]Tool(nil), tools...)
}

// ToolByID finds a tool by id.
func ToolByID(id string) (Tool, bool) {
	for _, t := range tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// ToolsByCategory returns the tools of one category.
func ToolsByCategory(category string) []Tool {
	out := []Tool{}
	for _, t := range tools {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// ToolCategories returns the catalog categories in display order.
func ToolCategories() []ToolCategory {
	return append([]ToolCategory(nil), toolCategories...)
}

func toolCategoryIDs() []string {
	ids := make([]string, len(toolCategories))
	for i, c := range toolCategories {
		ids[i] = c.ID
	}
	return ids
}
