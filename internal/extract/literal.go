package extract

import "strings"

// minLiteralLen excludes very short titles from literal matching to limit
// false positives.
const minLiteralLen = 3

// Literal matches bare occurrences of known titles in content. The test is
// plain substring containment with no word-boundary check, so titles embedded
// in longer words also match. Known limitation, kept deliberately.
type Literal struct{}

// Extract returns each known title of length >= 3 that occurs in content at
// a position not already enclosed by wikilink brackets.
func (Literal) Extract(content string, titles []string) []string {
	var out []string
	for _, title := range titles {
		if len(title) < minLiteralLen {
			continue
		}
		if bareOccurrence(content, title) {
			out = append(out, title)
		}
	}
	return out
}

// bareOccurrence reports whether title appears in content at some position
// that is neither immediately preceded by "[[" nor immediately followed by
// "]]". Only the directly adjacent characters are inspected.
func bareOccurrence(content, title string) bool {
	for from := 0; ; {
		i := strings.Index(content[from:], title)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(title)
		opened := start >= 2 && content[start-2:start] == "[["
		closed := end+2 <= len(content) && content[end:end+2] == "]]"
		if !opened && !closed {
			return true
		}
		from = start + 1
	}
}
