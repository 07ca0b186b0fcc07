package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lmenard/dskit-mcp/internal/catalog"
	"github.com/lmenard/dskit-mcp/internal/colors"
	"github.com/lmenard/dskit-mcp/internal/icons"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
)

// handleListEntries handles the list_entries tool invocation
func (s *Server) handleListEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := s.docs.ListJSON()
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to encode entry index", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(payload), nil
}

// handleGetEntrySection handles the get_entry_section tool invocation.
// Unknown names and unavailable sections are normal text payloads carrying
// suggestions, not protocol errors.
func (s *Server) handleGetEntrySection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "name parameter is required", map[string]interface{}{
			"param":  "name",
			"reason": "missing or empty",
		})
	}

	section := catalog.Section(getStringDefault(args, "section", string(catalog.SectionCode)))

	return mcp.NewToolResultText(s.docs.Resolve(name, section)), nil
}

// handleSearchEntries handles the search_entries tool invocation
func (s *Server) handleSearchEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	return mcp.NewToolResultText(s.docs.Search(query)), nil
}

// handleSearchIcons handles the search_icons tool invocation
func (s *Server) handleSearchIcons(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	category := getStringDefault(args, "category", "")

	return mcp.NewToolResultText(icons.Search(s.catalog.Icons, query, category)), nil
}

// handleGetColorTokens handles the get_color_tokens tool invocation
func (s *Server) handleGetColorTokens(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		// All parameters are optional; no arguments means the summary.
		args = map[string]interface{}{}
	}

	filters := colors.Filters{
		Context: getStringDefault(args, "context", ""),
		Usage:   getStringDefault(args, "usage", ""),
		Family:  getStringDefault(args, "family", ""),
	}

	return mcp.NewToolResultText(colors.Query(s.catalog.Colors, filters)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
