package extract

import (
	"regexp"
	"strings"
)

var wikilinkRe = regexp.MustCompile(`\[\[(.*?)\]\]`)

// Wikilink extracts explicit [[Target]] and [[Target|Display]] references.
// Targets are taken verbatim; display text after the first | is discarded.
// Nested brackets are not supported.
type Wikilink struct{}

// Extract returns every wikilink target in content, duplicates included.
// The known-title list is not consulted: explicit links are captured whether
// or not they resolve.
func (Wikilink) Extract(content string, _ []string) []string {
	matches := wikilinkRe.FindAllStringSubmatch(content, -1)
	var out []string
	for _, m := range matches {
		target := m[1]
		if i := strings.Index(target, "|"); i >= 0 {
			target = target[:i]
		}
		out = append(out, target)
	}
	return out
}
