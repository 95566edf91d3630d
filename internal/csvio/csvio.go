// Package csvio reads and writes the CSV interchange format used to move
// library content (verbs, expressions, glossary, readings) between
// deployments and spreadsheets.
package csvio

import (
	"strings"

	"github.com/fjordlearn/fjordlearn-backend/internal/model"
)

// ImportStats summarizes one import run.
type ImportStats struct {
	Created int
	Updated int
	Skipped int
}

// tagSeparator joins tags inside a single CSV cell.
const tagSeparator = ";"

// JoinTags flattens a tag slice into its CSV cell form.
func JoinTags(tags []string) string {
	return strings.Join(tags, tagSeparator)
}

// SplitTags parses a tags cell, dropping empty fragments.
func SplitTags(cell string) []string {
	parts := strings.Split(cell, tagSeparator)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ValidStream reports whether the cell names a known content stream.
func ValidStream(s string) bool {
	switch model.Stream(s) {
	case model.StreamBokmaal, model.StreamNynorsk, model.StreamEnglish:
		return true
	}
	return false
}

// Slugify derives a URL slug from a title: lowercased, non-alphanumeric
// runs collapsed to single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == 'æ':
			b.WriteString("ae")
			lastHyphen = false
		case r == 'ø':
			b.WriteString("o")
			lastHyphen = false
		case r == 'å':
			b.WriteString("a")
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// row wraps one CSV record with header-based field access.
type row struct {
	index  map[string]int
	fields []string
}

func (r row) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// headerIndex maps column names to positions, stripping a UTF-8 BOM from
// the first cell if present.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		index[strings.TrimSpace(name)] = i
	}
	return index
}
