package colors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmenard/dskit-mcp/internal/catalog"
)

func testColors() catalog.Colors {
	return catalog.Colors{
		DecisionTokens: []catalog.DecisionToken{
			{Token: "background-default-grey", Context: "background", Description: "Default surface", Light: "grey-1000", Dark: "grey-75"},
			{Token: "background-action-blue-france", Context: "background", Description: "Primary action surface", Light: "blue-625", Dark: "blue-425"},
			{Token: "text-title-grey", Context: "text", Description: "Headings", Light: "grey-50", Dark: "grey-1000"},
			{Token: "artwork-major-red-marianne", Context: "artwork", Description: "Major artwork accent", Light: "red-472", Dark: "red-718"},
		},
		Families: []catalog.Family{
			{Name: "blue-france", Category: "primaire", Correspondences: map[string]catalog.Shade{
				"default": {Light: "blue-625", Dark: "blue-425"},
				"hover":   {Light: "blue-525", Dark: "blue-325"},
			}},
			{Name: "grey", Category: "neutre", Correspondences: map[string]catalog.Shade{
				"default": {Light: "grey-1000", Dark: "grey-75"},
			}},
			{Name: "green-tilleul", Category: "illustrative", Correspondences: map[string]catalog.Shade{
				"default": {Light: "green-991", Dark: "green-75"},
			}},
		},
		IllustrativeNames: []string{"green-tilleul"},
	}
}

func TestQuerySummaryWithNoFilters(t *testing.T) {
	payload := Query(testColors(), Filters{})

	assert.Contains(t, payload, "background, text, artwork")
	assert.Contains(t, payload, "- blue-france [primaire]")
	assert.Contains(t, payload, "- grey [neutre]")
	assert.Contains(t, payload, "- green-tilleul [illustrative]")
	assert.Contains(t, payload, "Illustrative families: green-tilleul")
}

func TestQueryContextFilterIsExact(t *testing.T) {
	kept := filterTokens(testColors().DecisionTokens, Filters{Context: "background"})

	require.Len(t, kept, 2)
	for _, tok := range kept {
		assert.Equal(t, "background", tok.Context)
	}
}

func TestQueryUsageFilterMatchesTokenOrDescription(t *testing.T) {
	tokens := testColors().DecisionTokens

	byToken := filterTokens(tokens, Filters{Usage: "action"})
	require.Len(t, byToken, 1)
	assert.Equal(t, "background-action-blue-france", byToken[0].Token)

	byDescription := filterTokens(tokens, Filters{Usage: "HEADINGS"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "text-title-grey", byDescription[0].Token)
}

func TestQueryFamilyFilterIsTokenTextHeuristic(t *testing.T) {
	// The family filter matches the token identifier text, not the family
	// structure: "marianne" has no family entry but still matches a token.
	kept := filterTokens(testColors().DecisionTokens, Filters{Family: "marianne"})
	require.Len(t, kept, 1)
	assert.Equal(t, "artwork-major-red-marianne", kept[0].Token)
}

func TestQueryCombinedFilters(t *testing.T) {
	kept := filterTokens(testColors().DecisionTokens, Filters{Context: "background", Usage: "primary"})
	require.Len(t, kept, 1)
	assert.Equal(t, "background-action-blue-france", kept[0].Token)
}

func TestQueryFamilySectionByNameAndCategory(t *testing.T) {
	byName := filterFamilies(testColors().Families, "france")
	require.Len(t, byName, 1)
	assert.Equal(t, "blue-france", byName[0].Name)

	byCategory := filterFamilies(testColors().Families, "neutre")
	require.Len(t, byCategory, 1)
	assert.Equal(t, "grey", byCategory[0].Name)
}

func TestQueryBothSectionsConcatenated(t *testing.T) {
	payload := Query(testColors(), Filters{Family: "france"})

	assert.Contains(t, payload, "decision token(s)")
	assert.Contains(t, payload, "color family(ies)")

	// Decision tokens come first, then family detail.
	assert.Less(t,
		strings.Index(payload, "background-action-blue-france"),
		strings.Index(payload, "## blue-france [primaire]"))
	assert.Contains(t, payload, "hover: light blue-525 / dark blue-325")
}

func TestQueryTokenSectionOmittedWhenEmpty(t *testing.T) {
	// "tilleul" matches a family but no token identifier.
	payload := Query(testColors(), Filters{Family: "tilleul"})

	assert.NotContains(t, payload, "decision token(s)")
	assert.Contains(t, payload, "## green-tilleul [illustrative]")
}

func TestQueryNoResultsPayload(t *testing.T) {
	payload := Query(testColors(), Filters{Context: "background", Usage: "zzz"})

	assert.Contains(t, payload, `context="background"`)
	assert.Contains(t, payload, `usage="zzz"`)
	assert.Contains(t, payload, "background, text, artwork")
	assert.Contains(t, payload, "blue-france, grey, green-tilleul")
}

func TestQueryContextExcludesOtherContexts(t *testing.T) {
	payload := Query(testColors(), Filters{Context: "background"})

	assert.Contains(t, payload, "background-default-grey")
	assert.NotContains(t, payload, "text-title-grey")
	assert.NotContains(t, payload, "artwork-major-red-marianne")
}
