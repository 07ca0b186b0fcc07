package docs

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lmenard/dskit-mcp/internal/catalog"
)

// Result is one search hit. An entry contributes at most one result: a
// metadata match wins outright, otherwise the first section whose content
// contains the query.
type Result struct {
	Name      string
	Title     string
	Category  catalog.Category
	MatchType string
	Excerpt   string
}

// Search scans every entry for the query, case-insensitively, and returns a
// text payload of the hits in index order.
func (e *Engine) Search(query string) string {
	results := e.collect(query)

	if len(results) == 0 {
		return fmt.Sprintf("No results for %q. Use list_entries to browse the catalog.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d result(s) for %q:\n", len(results), query)
	for _, r := range results {
		fmt.Fprintf(&b, "\n- %s (%s) [%s]\n  match: %s\n  %s\n", r.Name, r.Title, r.Category, r.MatchType, r.Excerpt)
	}
	return b.String()
}

// collect gathers at most one Result per entry, in index order.
func (e *Engine) collect(query string) []Result {
	lower := strings.ToLower(query)

	var results []Result
	for _, entry := range e.catalog.Entries {
		if strings.Contains(strings.ToLower(entry.Name), lower) ||
			strings.Contains(strings.ToLower(entry.Title), lower) ||
			strings.Contains(strings.ToLower(entry.Description), lower) {
			results = append(results, Result{
				Name:      entry.Name,
				Title:     entry.Title,
				Category:  entry.Category,
				MatchType: "metadata",
				Excerpt:   entry.Description,
			})
			continue
		}

		if r, ok := e.contentMatch(entry, lower); ok {
			results = append(results, r)
		}
	}
	return results
}

// contentMatch scans the entry's sections in declared order and stops at the
// first one whose file content contains the query.
func (e *Engine) contentMatch(entry catalog.Entry, lowerQuery string) (Result, bool) {
	for _, section := range catalog.SectionOrder {
		if !entry.HasSection(section) {
			continue
		}

		content, ok := e.content.Read(e.catalog.SectionPath(entry, section))
		if !ok {
			continue
		}

		idx := strings.Index(strings.ToLower(content), lowerQuery)
		if idx < 0 {
			continue
		}

		return Result{
			Name:      entry.Name,
			Title:     entry.Title,
			Category:  entry.Category,
			MatchType: fmt.Sprintf("content (%s)", section),
			Excerpt:   excerpt(content, idx, len(lowerQuery)),
		}, true
	}
	return Result{}, false
}

var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// excerpt windows up to excerptRadius characters on each side of the match,
// clamped to the content bounds, with ellipsis markers where clamped and
// newlines flattened to spaces.
func excerpt(content string, matchStart, matchLen int) string {
	start := matchStart - excerptRadius
	if start < 0 {
		start = 0
	}
	end := matchStart + matchLen + excerptRadius
	if end > len(content) {
		end = len(content)
	}

	// The offsets are byte positions and may land inside a multibyte rune;
	// widen to rune boundaries so the excerpt stays valid UTF-8.
	for start > 0 && !utf8.RuneStart(content[start]) {
		start--
	}
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}

	snippet := newlineFlattener.Replace(content[start:end])
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(content) {
		snippet += "…"
	}
	return snippet
}
