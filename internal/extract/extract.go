// Package extract finds references to known document titles inside Markdown
// content. Two strategies exist: explicit [[wikilink]] syntax and opt-in
// literal-text matching of bare titles.
package extract

// Strategy produces the titles referenced by content, given every known title.
// Implementations may return duplicates; Union deduplicates.
type Strategy interface {
	Extract(content string, titles []string) []string
}

// Union runs each strategy in order and merges the results into one
// deduplicated title set, preserving first-encounter order.
func Union(content string, titles []string, strategies ...Strategy) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range strategies {
		for _, title := range s.Extract(content, titles) {
			if _, dup := seen[title]; dup {
				continue
			}
			seen[title] = struct{}{}
			out = append(out, title)
		}
	}
	return out
}

// Strategies returns the enabled strategy set: wikilinks always, literal-text
// matching only when opted in.
func Strategies(literal bool) []Strategy {
	out := []Strategy{Wikilink{}}
	if literal {
		out = append(out, Literal{})
	}
	return out
}
