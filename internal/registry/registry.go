// Package registry derives canonical titles and maps them back to documents.
//
// A title is the filename stem of a vault-relative path. Titles are not
// guaranteed unique; on collision the most-recently-registered document wins,
// which can misattribute backlinks. Known limitation, kept deliberately.
package registry

import (
	"path"
	"strings"

	"github.com/starford/gebo/internal/models"
)

// Registry maps titles to document paths. Built once per run, read-only after.
type Registry struct {
	titles []string          // unique titles in first-seen order
	byName map[string]string // title → vault-relative path, last registration wins
}

// Build constructs a registry from document metadata in enumeration order.
func Build(metas []models.DocumentMeta) *Registry {
	r := &Registry{
		byName: make(map[string]string, len(metas)),
	}
	for _, m := range metas {
		title := TitleOf(m.Path)
		if _, seen := r.byName[title]; !seen {
			r.titles = append(r.titles, title)
		}
		r.byName[title] = m.Path
	}
	return r
}

// TitleOf returns the canonical title for a vault-relative path:
// the base name without its extension.
func TitleOf(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Titles returns every known title in first-seen order.
func (r *Registry) Titles() []string {
	return r.titles
}

// Lookup returns the document path registered for title.
func (r *Registry) Lookup(title string) (string, bool) {
	p, ok := r.byName[title]
	return p, ok
}

// Len returns the number of distinct titles.
func (r *Registry) Len() int {
	return len(r.titles)
}
