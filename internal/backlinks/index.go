// Package backlinks aggregates extracted references into a reverse index:
// target document → ordered inbound references.
package backlinks

import (
	"github.com/starford/gebo/internal/models"
	"github.com/starford/gebo/internal/registry"
)

// Index maps a target document path to its inbound references, accumulated in
// document-encounter order and deduplicated by source title.
type Index map[string][]models.Reference

// Build aggregates per-document reference sets into the reverse index.
// docs must be in enumeration order and each document's Refs already unioned
// across strategies. Titles that do not resolve in the registry are dropped.
// Self-references are recorded like any other: a document linking its own
// title backlinks itself.
func Build(docs []ScannedDocument, reg *registry.Registry) Index {
	idx := make(Index)
	for _, d := range docs {
		for _, title := range d.Refs {
			target, ok := reg.Lookup(title)
			if !ok {
				continue
			}
			idx[target] = append(idx[target], models.Reference{
				SourceTitle: d.Title,
				SourcePath:  d.Path,
			})
		}
	}
	for target, refs := range idx {
		idx[target] = dedupeBySourceTitle(refs)
	}
	return idx
}

// ScannedDocument pairs a document with the reference titles found in it.
type ScannedDocument struct {
	Path  string
	Title string
	Refs  []string
}

// dedupeBySourceTitle keeps the first reference per source title, preserving
// order. Repeated mentions from one source collapse to a single backlink line;
// colliding source titles collapse to the first-encountered source.
func dedupeBySourceTitle(refs []models.Reference) []models.Reference {
	seen := make(map[string]struct{}, len(refs))
	out := refs[:0]
	for _, r := range refs {
		if _, dup := seen[r.SourceTitle]; dup {
			continue
		}
		seen[r.SourceTitle] = struct{}{}
		out = append(out, r)
	}
	return out
}
