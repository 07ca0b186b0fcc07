// Package colors answers filtered queries over the color artifact: flat
// decision tokens and structural color families.
package colors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lmenard/dskit-mcp/internal/catalog"
)

// Filters narrows a color query. All fields are optional and combinable.
type Filters struct {
	// Context keeps only decision tokens whose context matches exactly.
	Context string
	// Usage keeps tokens whose identifier or description contains it.
	Usage string
	// Family keeps tokens whose identifier contains it, and selects
	// families whose name or category contains it. The token side is a
	// textual heuristic over the identifier, not a join against the
	// family structure.
	Family string
}

func (f Filters) empty() bool {
	return f.Context == "" && f.Usage == "" && f.Family == ""
}

// Query applies the filters and returns a text payload. With no filters it
// returns a summary of the whole artifact and never fails.
func Query(c catalog.Colors, f Filters) string {
	if f.empty() {
		return summary(c)
	}

	tokens := filterTokens(c.DecisionTokens, f)

	var families []catalog.Family
	if f.Family != "" {
		families = filterFamilies(c.Families, f.Family)
	}

	if len(tokens) == 0 && len(families) == 0 {
		return noResultsPayload(c, f)
	}

	var sections []string
	if len(tokens) > 0 {
		sections = append(sections, renderTokens(tokens))
	}
	if len(families) > 0 {
		sections = append(sections, renderFamilies(families))
	}
	return strings.Join(sections, "\n\n")
}

// filterTokens applies the combinable token-side filters.
func filterTokens(tokens []catalog.DecisionToken, f Filters) []catalog.DecisionToken {
	usage := strings.ToLower(f.Usage)
	family := strings.ToLower(f.Family)

	var kept []catalog.DecisionToken
	for _, t := range tokens {
		if f.Context != "" && t.Context != f.Context {
			continue
		}
		if f.Usage != "" &&
			!strings.Contains(strings.ToLower(t.Token), usage) &&
			!strings.Contains(strings.ToLower(t.Description), usage) {
			continue
		}
		if f.Family != "" && !strings.Contains(strings.ToLower(t.Token), family) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// filterFamilies selects families whose name or category contains the query.
func filterFamilies(families []catalog.Family, family string) []catalog.Family {
	lower := strings.ToLower(family)

	var kept []catalog.Family
	for _, fam := range families {
		if strings.Contains(strings.ToLower(fam.Name), lower) ||
			strings.Contains(strings.ToLower(fam.Category), lower) {
			kept = append(kept, fam)
		}
	}
	return kept
}

func renderTokens(tokens []catalog.DecisionToken) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d decision token(s):\n", len(tokens))
	for _, t := range tokens {
		fmt.Fprintf(&b, "\n- %s [%s]\n  %s\n  light: %s / dark: %s\n",
			t.Token, t.Context, t.Description, t.Light, t.Dark)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderFamilies(families []catalog.Family) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d color family(ies):\n", len(families))
	for _, fam := range families {
		fmt.Fprintf(&b, "\n## %s [%s]\n", fam.Name, fam.Category)

		variants := make([]string, 0, len(fam.Correspondences))
		for v := range fam.Correspondences {
			variants = append(variants, v)
		}
		sort.Strings(variants)
		for _, v := range variants {
			shade := fam.Correspondences[v]
			fmt.Fprintf(&b, "- %s: light %s / dark %s\n", v, shade.Light, shade.Dark)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// summary describes the whole artifact: distinct token contexts, every
// family with its category, and the illustrative family names.
func summary(c catalog.Colors) string {
	var b strings.Builder

	b.WriteString("Color corpus summary.\n")
	fmt.Fprintf(&b, "\nToken contexts: %s\n", strings.Join(contexts(c.DecisionTokens), ", "))

	b.WriteString("\nFamilies:\n")
	for _, fam := range c.Families {
		fmt.Fprintf(&b, "- %s [%s]\n", fam.Name, fam.Category)
	}

	if len(c.IllustrativeNames) > 0 {
		fmt.Fprintf(&b, "\nIllustrative families: %s\n", strings.Join(c.IllustrativeNames, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func noResultsPayload(c catalog.Colors, f Filters) string {
	var active []string
	if f.Context != "" {
		active = append(active, fmt.Sprintf("context=%q", f.Context))
	}
	if f.Usage != "" {
		active = append(active, fmt.Sprintf("usage=%q", f.Usage))
	}
	if f.Family != "" {
		active = append(active, fmt.Sprintf("family=%q", f.Family))
	}

	names := make([]string, len(c.Families))
	for i, fam := range c.Families {
		names[i] = fam.Name
	}

	return fmt.Sprintf("No color tokens or families match %s.\nAvailable contexts: %s.\nAvailable families: %s.",
		strings.Join(active, ", "),
		strings.Join(contexts(c.DecisionTokens), ", "),
		strings.Join(names, ", "))
}

// contexts returns the distinct token contexts in first-appearance order.
func contexts(tokens []catalog.DecisionToken) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tokens {
		if _, ok := seen[t.Context]; ok {
			continue
		}
		seen[t.Context] = struct{}{}
		out = append(out, t.Context)
	}
	return out
}
