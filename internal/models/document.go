// Package models defines the domain types for Gebo.
package models

import "time"

// Document represents a Markdown file in the vault during one run.
type Document struct {
	Path    string // vault-relative path, the document's identity
	Title   string // filename stem, the canonical matching identifier
	Content string // full text body, resident for the duration of the run
}

// DocumentMeta is a lightweight representation returned by list operations.
type DocumentMeta struct {
	Path      string
	Checksum  string
	UpdatedAt time.Time
}

// Reference records that a source document mentions a target document.
// The target is implied by the index key the reference is stored under.
type Reference struct {
	SourceTitle string
	SourcePath  string
}
