// Package icons implements scored search over the icon artifact. Matching is
// case-insensitive and purely in-memory; no file reads are involved.
package icons

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lmenard/dskit-mcp/internal/catalog"
)

// maxResults caps the rendered result list.
const maxResults = 20

// Match score tiers. An icon scoring 0 is excluded.
const (
	scoreExact    = 3
	scorePrefix   = 2
	scoreContains = 1
)

type scored struct {
	icon  catalog.Icon
	score int
}

// Search ranks icons against the query and returns a text payload. When
// category is non-empty, only icons of that exact category are considered.
func Search(icons []catalog.Icon, query, category string) string {
	matches := rank(icons, query, category)

	if len(matches) == 0 {
		return noResultsPayload(icons, query, category)
	}

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d icon(s) matching %q:\n", len(matches), query)
	for _, m := range matches {
		variants := "no variant"
		if len(m.icon.Variants) > 0 {
			variants = strings.Join(m.icon.Variants, ", ")
		}
		fmt.Fprintf(&b, "\n- %s [%s]\n  variants: %s\n  classes: %s\n",
			m.icon.Name, m.icon.Category, variants, strings.Join(m.icon.Classes, ", "))
	}
	return b.String()
}

// rank scores candidates and sorts by score descending, then name ascending.
func rank(icons []catalog.Icon, query, category string) []scored {
	lower := strings.ToLower(query)

	var matches []scored
	for _, icon := range icons {
		if category != "" && icon.Category != category {
			continue
		}
		if s := score(icon, lower); s > 0 {
			matches = append(matches, scored{icon: icon, score: s})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].icon.Name < matches[j].icon.Name
	})
	return matches
}

func score(icon catalog.Icon, lowerQuery string) int {
	name := strings.ToLower(icon.Name)
	switch {
	case name == lowerQuery:
		return scoreExact
	case strings.HasPrefix(name, lowerQuery):
		return scorePrefix
	case strings.Contains(name, lowerQuery):
		return scoreContains
	}
	for _, class := range icon.Classes {
		if strings.Contains(strings.ToLower(class), lowerQuery) {
			return scoreContains
		}
	}
	return 0
}

func noResultsPayload(icons []catalog.Icon, query, category string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "No icons match %q.", query)

	if category != "" {
		fmt.Fprintf(&b, " The category filter %q is active; try again without it.", category)
		return b.String()
	}

	if cats := Categories(icons); len(cats) > 0 {
		fmt.Fprintf(&b, " Known categories: %s.", strings.Join(cats, ", "))
	}
	return b.String()
}

// Categories returns the distinct icon categories in sorted order.
func Categories(icons []catalog.Icon) []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, icon := range icons {
		if _, ok := seen[icon.Category]; ok {
			continue
		}
		seen[icon.Category] = struct{}{}
		cats = append(cats, icon.Category)
	}
	sort.Strings(cats)
	return cats
}
