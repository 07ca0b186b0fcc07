package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// listEntriesTool returns the tool definition for list_entries
func listEntriesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_entries",
		Description: "List every documented entry of the design kit (components, core concepts, layouts, patterns) as JSON",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getEntrySectionTool returns the tool definition for get_entry_section
func getEntrySectionTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_entry_section",
		Description: "Get one documentation section of a named entry",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Entry name (case-insensitive), e.g. 'button'",
				},
				"section": map[string]interface{}{
					"type":        "string",
					"description": "Documentation section to fetch",
					"enum":        []string{"overview", "code", "design", "accessibility", "demo"},
					"default":     "code",
				},
			},
			Required: []string{"name"},
		},
	}
}

// searchEntriesTool returns the tool definition for search_entries
func searchEntriesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_entries",
		Description: "Search entries by metadata and documentation content",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Substring to look for in entry names, titles, descriptions and section content",
				},
			},
			Required: []string{"query"},
		},
	}
}

// searchIconsTool returns the tool definition for search_icons
func searchIconsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_icons",
		Description: "Search design-kit icons by name or CSS class",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Icon name fragment, e.g. 'download'",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Restrict results to one icon category (exact match)",
				},
			},
			Required: []string{"query"},
		},
	}
}

// getColorTokensTool returns the tool definition for get_color_tokens
func getColorTokensTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_color_tokens",
		Description: "Query color decision tokens and color families; with no filters, returns a summary of the color corpus",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"context": map[string]interface{}{
					"type":        "string",
					"description": "Keep only tokens with this usage context",
					"enum":        []string{"background", "text", "artwork"},
				},
				"usage": map[string]interface{}{
					"type":        "string",
					"description": "Keep only tokens whose identifier or description contains this text",
				},
				"family": map[string]interface{}{
					"type":        "string",
					"description": "Keep tokens whose identifier contains this text, and include matching color families",
				},
			},
		},
	}
}
