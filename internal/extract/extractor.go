// Package extract builds the three JSON documentation artifacts (index,
// icons, colors) from a local checkout of the upstream design-kit
// documentation repository. Cloning that repository is the caller's
// problem; the extractor only walks a directory tree.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lmenard/dskit-mcp/internal/catalog"
)

// Source layout, relative to the checkout root.
const (
	srcContentDir   = "content"
	srcIconsDir     = "icons"
	srcDecisionsDoc = "colors/decisions.md"
	srcFamiliesDoc  = "colors/families.md"
)

var knownCategories = []catalog.Category{
	catalog.CategoryComponent,
	catalog.CategoryCore,
	catalog.CategoryLayout,
	catalog.CategoryPattern,
}

// Token contexts accepted from the decisions table. Rows with any other
// context cell (including the table header) are dropped as malformed.
var knownContexts = map[string]struct{}{
	"background": {},
	"text":       {},
	"artwork":    {},
}

// Extractor turns a docs checkout into the artifact set the server loads.
type Extractor struct {
	src     string
	dst     string
	workers int
}

// Statistics reports what one extraction run produced.
type Statistics struct {
	EntriesExtracted  int
	EntriesSkipped    int
	SectionsCopied    int
	IconsExtracted    int
	TokensExtracted   int
	FamiliesExtracted int
	Duration          time.Duration
}

// New creates an extractor reading from the checkout at src and writing
// artifacts plus section files under dst.
func New(src, dst string) *Extractor {
	return &Extractor{src: src, dst: dst, workers: runtime.NumCPU()}
}

// Run performs a full extraction. Entries with no recovered sections are
// skipped, never written: the loader relies on Sections being non-empty.
func (x *Extractor) Run(ctx context.Context) (*Statistics, error) {
	start := time.Now()
	stats := &Statistics{}

	if err := os.MkdirAll(x.dst, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := x.extractEntries(ctx, stats)
	if err != nil {
		return nil, err
	}

	iconList, err := x.extractIcons()
	if err != nil {
		return nil, err
	}
	stats.IconsExtracted = len(iconList)

	colorData, err := x.extractColors()
	if err != nil {
		return nil, err
	}
	stats.TokensExtracted = len(colorData.DecisionTokens)
	stats.FamiliesExtracted = len(colorData.Families)

	if err := writeArtifact(filepath.Join(x.dst, catalog.IndexFile), entries); err != nil {
		return nil, err
	}
	if err := writeArtifact(filepath.Join(x.dst, catalog.IconsFile), iconList); err != nil {
		return nil, err
	}
	if err := writeArtifact(filepath.Join(x.dst, catalog.ColorsFile), colorData); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// extractEntries walks content/<category>/<name>/ directories, reads each
// entry's frontmatter and copies its section files into the artifact tree.
func (x *Extractor) extractEntries(ctx context.Context, stats *Statistics) ([]catalog.Entry, error) {
	entries := []catalog.Entry{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(x.workers)

	for _, category := range knownCategories {
		categoryDir := filepath.Join(x.src, srcContentDir, string(category))
		names, err := os.ReadDir(categoryDir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", categoryDir, err)
		}

		for _, dir := range names {
			if !dir.IsDir() {
				continue
			}
			name := strings.ToLower(dir.Name())
			entryDir := filepath.Join(categoryDir, dir.Name())

			sections := detectSections(entryDir)
			if len(sections) == 0 {
				stats.EntriesSkipped++
				continue
			}

			title, description := readEntryMeta(entryDir, name)
			entries = append(entries, catalog.Entry{
				Name:        name,
				Title:       title,
				Description: description,
				Category:    category,
				Sections:    sections,
			})

			for _, section := range sections {
				src := filepath.Join(entryDir, string(section)+".md")
				dst := filepath.Join(x.dst, srcContentDir, string(category), name, string(section)+".md")
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					return copyFile(src, dst)
				})
				stats.SectionsCopied++
			}
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to copy section files: %w", err)
	}

	stats.EntriesExtracted = len(entries)
	return entries, nil
}

// detectSections reports which section files exist, in declared order.
func detectSections(entryDir string) []catalog.Section {
	var sections []catalog.Section
	for _, section := range catalog.SectionOrder {
		if _, err := os.Stat(filepath.Join(entryDir, string(section)+".md")); err == nil {
			sections = append(sections, section)
		}
	}
	return sections
}

// readEntryMeta pulls title and description out of index.md frontmatter,
// falling back to the entry name when a field is absent.
func readEntryMeta(entryDir, name string) (title, description string) {
	title = name
	data, err := os.ReadFile(filepath.Join(entryDir, "index.md"))
	if err != nil {
		return title, ""
	}

	fields := parseFrontmatter(string(data))
	if t, ok := fields["title"]; ok {
		title = t
	}
	return title, fields["description"]
}

// extractIcons walks icons/<category>/*.svg and folds fill/line files of
// the same stem into one icon record.
func (x *Extractor) extractIcons() ([]catalog.Icon, error) {
	iconsDir := filepath.Join(x.src, srcIconsDir)
	categories, err := os.ReadDir(iconsDir)
	if os.IsNotExist(err) {
		return []catalog.Icon{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", iconsDir, err)
	}

	// The same stem may exist in more than one category directory, so the
	// fold key carries the category too.
	type iconKey struct {
		category string
		name     string
	}
	byKey := make(map[iconKey]*catalog.Icon)
	for _, categoryDir := range categories {
		if !categoryDir.IsDir() {
			continue
		}
		category := categoryDir.Name()

		files, err := os.ReadDir(filepath.Join(iconsDir, category))
		if err != nil {
			return nil, fmt.Errorf("failed to read icon category %s: %w", category, err)
		}

		for _, f := range files {
			stem, ok := strings.CutSuffix(f.Name(), ".svg")
			if !ok || f.IsDir() {
				continue
			}

			name, variant := splitVariant(stem)
			key := iconKey{category: category, name: name}
			icon, exists := byKey[key]
			if !exists {
				icon = &catalog.Icon{
					Name:     name,
					Category: category,
					Classes:  []string{"dk-icon-" + name},
				}
				byKey[key] = icon
			}
			if variant != "" {
				icon.Variants = append(icon.Variants, variant)
				icon.Classes = append(icon.Classes, "dk-icon-"+name+"-"+variant)
			}
		}
	}

	iconList := make([]catalog.Icon, 0, len(byKey))
	for _, icon := range byKey {
		sort.Strings(icon.Variants)
		sort.Strings(icon.Classes)
		iconList = append(iconList, *icon)
	}
	sort.Slice(iconList, func(i, j int) bool {
		if iconList[i].Name != iconList[j].Name {
			return iconList[i].Name < iconList[j].Name
		}
		return iconList[i].Category < iconList[j].Category
	})
	return iconList, nil
}

// splitVariant separates a trailing -fill or -line marker from an icon file
// stem. Single-form icons keep their full stem and no variant.
func splitVariant(stem string) (name, variant string) {
	for _, v := range []string{"fill", "line"} {
		if base, ok := strings.CutSuffix(stem, "-"+v); ok {
			return base, v
		}
	}
	return stem, ""
}

// extractColors reads decision tokens and families from their markdown
// tables. Both documents are optional; an absent document just yields an
// empty list.
func (x *Extractor) extractColors() (catalog.Colors, error) {
	colors := catalog.Colors{
		DecisionTokens: []catalog.DecisionToken{},
		Families:       []catalog.Family{},
	}

	if data, err := os.ReadFile(filepath.Join(x.src, srcDecisionsDoc)); err == nil {
		colors.DecisionTokens = parseDecisionTokens(string(data))
	}
	if data, err := os.ReadFile(filepath.Join(x.src, srcFamiliesDoc)); err == nil {
		colors.Families = parseFamilies(string(data))
	}

	colors.IllustrativeNames = []string{}
	for _, fam := range colors.Families {
		if fam.Category == "illustrative" {
			colors.IllustrativeNames = append(colors.IllustrativeNames, fam.Name)
		}
	}
	return colors, nil
}

// parseDecisionTokens reads |token|context|description|light|dark| rows.
// Rows whose context cell is not a known context (the header included) are
// dropped.
func parseDecisionTokens(text string) []catalog.DecisionToken {
	var tokens []catalog.DecisionToken
	for _, line := range strings.Split(text, "\n") {
		cells := parseTableRow(line)
		if len(cells) != 5 {
			continue
		}
		context := strings.ToLower(cells[1])
		if _, ok := knownContexts[context]; !ok {
			continue
		}
		tokens = append(tokens, catalog.DecisionToken{
			Token:       cells[0],
			Context:     context,
			Description: cells[2],
			Light:       cells[3],
			Dark:        cells[4],
		})
	}
	return tokens
}

// parseFamilies reads `## name (category)` headings, each followed by a
// |variant|light|dark| table. The header row is recognized by its "light"
// cell and dropped.
func parseFamilies(text string) []catalog.Family {
	var families []catalog.Family
	var current *catalog.Family

	for _, line := range strings.Split(text, "\n") {
		if name, category, ok := parseFamilyHeading(line); ok {
			families = append(families, catalog.Family{
				Name:            name,
				Category:        category,
				Correspondences: make(map[string]catalog.Shade),
			})
			current = &families[len(families)-1]
			continue
		}

		if current == nil {
			continue
		}
		cells := parseTableRow(line)
		if len(cells) != 3 || strings.EqualFold(cells[1], "light") {
			continue
		}
		current.Correspondences[cells[0]] = catalog.Shade{Light: cells[1], Dark: cells[2]}
	}
	return families
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func writeArtifact(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode artifact %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	return nil
}
