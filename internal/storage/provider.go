// Package storage defines the vault file-system abstraction.
//
// The backlink pipeline never decides which documents exist; it consumes this
// narrow enumerate/read/write contract and derives everything else from the
// returned identities and content.
package storage

import "github.com/starford/gebo/internal/models"

// Provider is the interface for vault file operations.
type Provider interface {
	// List returns metadata for every .md file under dir (relative to vault
	// root), in walk order.
	List(dir string) ([]models.DocumentMeta, error)
	// Read returns the raw bytes of the file at path (relative to vault root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to vault root).
	Write(path string, content []byte) error
}
