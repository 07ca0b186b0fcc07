package catalog

// Category classifies a documentation entry.
type Category string

const (
	CategoryComponent Category = "component"
	CategoryCore      Category = "core"
	CategoryLayout    Category = "layout"
	CategoryPattern   Category = "pattern"
)

// Section names one facet of an entry's documentation.
type Section string

const (
	SectionOverview      Section = "overview"
	SectionCode          Section = "code"
	SectionDesign        Section = "design"
	SectionAccessibility Section = "accessibility"
	SectionDemo          Section = "demo"
)

// SectionOrder is the declared order in which sections are scanned and
// rendered. Entry.Sections is always a subset of this list, in this order.
var SectionOrder = []Section{
	SectionOverview,
	SectionCode,
	SectionDesign,
	SectionAccessibility,
	SectionDemo,
}

// Entry is one documented unit of the design kit. Name is unique across the
// index and lowercase-comparable; Sections is never empty for a loaded entry
// (the extractor drops entries with no recovered sections).
type Entry struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Sections    []Section `json:"sections"`
}

// HasSection reports whether the entry carries the given section.
func (e Entry) HasSection(s Section) bool {
	for _, have := range e.Sections {
		if have == s {
			return true
		}
	}
	return false
}

// Icon is one icon of the design kit. Variants is a subset of {fill, line};
// a single-form icon has no variants.
type Icon struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Variants []string `json:"variants"`
	Classes  []string `json:"classes"`
}

// DecisionToken is a named color variable tied to a usage context
// (background, text or artwork) with light- and dark-theme values.
type DecisionToken struct {
	Token       string `json:"token"`
	Context     string `json:"context"`
	Description string `json:"description"`
	Light       string `json:"light"`
	Dark        string `json:"dark"`
}

// Shade is a light/dark pair of color identifiers.
type Shade struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// Family is a named palette group. Correspondences maps a semantic variant
// key (for example "hover") to its light/dark identifiers.
type Family struct {
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Correspondences map[string]Shade `json:"correspondences"`
}

// Colors aggregates the color artifact.
type Colors struct {
	DecisionTokens    []DecisionToken `json:"decisionTokens"`
	Families          []Family        `json:"families"`
	IllustrativeNames []string        `json:"illustrativeNames"`
}
