// Package mcp implements the Model Context Protocol (MCP) server for the
// design-kit documentation corpus.
//
// The server exposes five tools to AI assistants:
//   - list_entries: the full entry index as JSON
//   - get_entry_section: one documentation section of a named entry
//   - search_entries: metadata + content substring search over entries
//   - search_icons: scored icon search by name or CSS class
//   - get_color_tokens: filtered color decision tokens and families
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Stdout is reserved for the protocol; all logging goes to stderr.
//
// # Lifecycle
//
// NewServer loads the three JSON artifacts (index, icons, colors) exactly
// once. A missing artifact is fatal: the operator must run
// `dskit-mcp extract` before serving. After that point every tool call is a
// pure read over the loaded structures; the only mutable state is the
// bounded LRU cache in front of section-file reads.
//
// # Error model
//
// Only malformed requests (missing required parameters) surface as MCP
// protocol errors. Unknown entry names, unavailable sections and empty
// search results are ordinary text payloads carrying next steps: nearest
// name suggestions, the entry's available sections, or the known icon
// categories and color contexts.
package mcp
