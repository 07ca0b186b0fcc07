// Package docs answers entry lookup and search queries over the loaded
// documentation catalog. Every operation is a pure read returning one text
// payload; unknown names and empty result sets become descriptive payloads,
// never errors.
package docs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lmenard/dskit-mcp/internal/catalog"
)

const (
	// maxSuggestions caps the nearest-name list in a not-found payload.
	maxSuggestions = 5
	// excerptRadius is how many bytes of context surround a content match.
	excerptRadius = 80
)

// Engine resolves and searches documentation entries.
type Engine struct {
	catalog *catalog.Catalog
	content *catalog.ContentStore
}

// NewEngine creates an engine over an already-loaded catalog.
func NewEngine(cat *catalog.Catalog, content *catalog.ContentStore) *Engine {
	return &Engine{catalog: cat, content: content}
}

// ListJSON returns the full entry index as indented JSON.
func (e *Engine) ListJSON() (string, error) {
	data, err := json.MarshalIndent(e.catalog.Entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode entry index: %w", err)
	}
	return string(data), nil
}

// Resolve returns the documentation for one section of the named entry.
// Lookup is case-insensitive. An unknown name yields a payload with up to
// five nearest-name suggestions; a section the entry does not carry yields a
// payload listing the sections it does.
func (e *Engine) Resolve(name string, section catalog.Section) string {
	entry, found := e.lookup(name)
	if !found {
		return e.notFoundPayload(name)
	}

	if !entry.HasSection(section) {
		return unavailableSectionPayload(entry, section)
	}

	content, ok := e.content.Read(e.catalog.SectionPath(entry, section))
	if !ok {
		// The index promised this section but the artifact lacks the file.
		return unavailableSectionPayload(entry, section)
	}

	return fmt.Sprintf("# %s — %s\n\n%s", entry.Title, section, content)
}

// lookup matches by exact name first, then case-insensitively.
func (e *Engine) lookup(name string) (catalog.Entry, bool) {
	for _, entry := range e.catalog.Entries {
		if entry.Name == name {
			return entry, true
		}
	}
	lower := strings.ToLower(name)
	for _, entry := range e.catalog.Entries {
		if strings.ToLower(entry.Name) == lower {
			return entry, true
		}
	}
	return catalog.Entry{}, false
}

// notFoundPayload names the failed query and suggests entries whose name or
// title contains it.
func (e *Engine) notFoundPayload(name string) string {
	lower := strings.ToLower(name)

	var suggestions []string
	for _, entry := range e.catalog.Entries {
		if len(suggestions) == maxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(entry.Name), lower) ||
			strings.Contains(strings.ToLower(entry.Title), lower) {
			suggestions = append(suggestions, fmt.Sprintf("- %s (%s)", entry.Name, entry.Title))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "No entry named %q was found.\n", name)
	if len(suggestions) == 0 {
		b.WriteString("No close matches were found either. Use list_entries to browse the catalog.")
	} else {
		b.WriteString("Did you mean:\n")
		b.WriteString(strings.Join(suggestions, "\n"))
	}
	return b.String()
}

func unavailableSectionPayload(entry catalog.Entry, section catalog.Section) string {
	available := make([]string, len(entry.Sections))
	for i, s := range entry.Sections {
		available[i] = string(s)
	}
	return fmt.Sprintf("Entry %q has no %q section. Available sections: %s.",
		entry.Name, section, strings.Join(available, ", "))
}
