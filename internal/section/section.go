// Package section renders and splices the canonical "## Backlinks" block
// inside document content.
//
// The canonical block is:
//
//	## Backlinks
//
//	- [[SourceTitle]]
//
// followed by a trailing blank line. Detection and replacement operate on an
// explicit (start, end) span over the content, making the splice a pure
// function of (content, span, replacement).
package section

import "strings"

// Heading is the fixed detection marker for a backlink section.
const Heading = "## Backlinks"

// marker includes the blank line that separates the heading from its entries.
const marker = Heading + "\n\n"

// Mode selects the update policy applied when a section already exists.
type Mode string

const (
	// ModeAppend leaves documents untouched once they carry a section.
	ModeAppend Mode = "append"
	// ModeReplace rewrites the first existing section in place.
	ModeReplace Mode = "replace"
)

// Valid reports whether m is a known update policy.
func (m Mode) Valid() bool {
	return m == ModeAppend || m == ModeReplace
}

// Span is a half-open [Start, End) byte range over content.
type Span struct {
	Start int
	End   int
}

// Find locates the first backlink section in content. The span runs from the
// heading marker through the next blank-line boundary after the marker, or to
// the end of content when no boundary follows.
func Find(content string) (Span, bool) {
	start := strings.Index(content, marker)
	if start < 0 {
		return Span{}, false
	}
	rest := content[start+len(marker):]
	if i := strings.Index(rest, "\n\n"); i >= 0 {
		return Span{Start: start, End: start + len(marker) + i + 2}, true
	}
	return Span{Start: start, End: len(content)}, true
}

// Render produces the canonical section for the given source titles, one list
// entry per title in order.
func Render(titles []string) string {
	var b strings.Builder
	b.WriteString(marker)
	for _, t := range titles {
		b.WriteString("- [[")
		b.WriteString(t)
		b.WriteString("]]\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Apply returns content updated with a section listing titles, under the
// given mode. With no titles the content is returned unchanged: an empty
// reference list never adds or removes a section.
func Apply(content string, titles []string, mode Mode) string {
	if len(titles) == 0 {
		return content
	}
	rendered := Render(titles)

	span, exists := Find(content)
	switch {
	case exists && mode == ModeAppend:
		// A section is already present; append mode never touches it.
		return content
	case exists && mode == ModeReplace:
		return content[:span.Start] + rendered + content[span.End:]
	default:
		return appendSection(content, rendered)
	}
}

// appendSection adds rendered to the end of content with exactly one blank
// line of separation.
func appendSection(content, rendered string) string {
	switch {
	case strings.HasSuffix(content, "\n\n"):
		return content + rendered
	case strings.HasSuffix(content, "\n"):
		return content + "\n" + rendered
	default:
		return content + "\n\n" + rendered
	}
}
