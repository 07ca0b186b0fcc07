package extract

import "strings"

// This file is a small line-grammar scanner for the two markdown shapes the
// upstream docs use: frontmatter blocks and pipe tables. Malformed input is
// treated as "field absent", never as an error.

// parseFrontmatter reads a key/value block delimited by `---` fences at the
// top of a markdown document. Keys are lowercased; lines without a colon are
// skipped. Returns nil when the document has no frontmatter.
func parseFrontmatter(text string) map[string]string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return nil
	}

	fields := make(map[string]string)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "---" {
			return fields
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" || value == "" {
			continue
		}
		fields[key] = value
	}

	// Unterminated fence: treat the whole block as absent.
	return nil
}

// parseTableRow splits one pipe-table row into trimmed cells. Returns nil
// for anything that is not a data row, including header separators like
// `|---|---|`.
func parseTableRow(line string) []string {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
		return nil
	}

	raw := strings.Split(strings.Trim(line, "|"), "|")
	cells := make([]string, len(raw))
	separator := true
	for i, cell := range raw {
		cells[i] = strings.TrimSpace(cell)
		if strings.Trim(cells[i], "-: ") != "" {
			separator = false
		}
	}
	if separator {
		return nil
	}
	return cells
}

// parseFamilyHeading reads a `## name (category)` heading. The second
// return value is false when the line is not a family heading.
func parseFamilyHeading(line string) (name, category string, ok bool) {
	line = strings.TrimSpace(line)
	rest, found := strings.CutPrefix(line, "## ")
	if !found {
		return "", "", false
	}

	open := strings.LastIndex(rest, "(")
	if open < 0 || !strings.HasSuffix(rest, ")") {
		return "", "", false
	}

	name = strings.TrimSpace(rest[:open])
	category = strings.TrimSpace(rest[open+1 : len(rest)-1])
	if name == "" || category == "" {
		return "", "", false
	}
	return name, category, true
}
