// Package pipeline runs one backlink generation pass over a vault: enumerate,
// build the title registry, extract references, aggregate the reverse index,
// then rewrite documents carrying inbound references.
//
// The read pass fully completes before any write begins, so a rewrite can
// never influence reference extraction within the same run. Reads fan out
// across a bounded worker group; results land in a position-indexed slice, so
// aggregation order always equals enumeration order and output is
// deterministic regardless of worker interleaving.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/starford/gebo/internal/apperr"
	"github.com/starford/gebo/internal/backlinks"
	"github.com/starford/gebo/internal/checksum"
	"github.com/starford/gebo/internal/extract"
	"github.com/starford/gebo/internal/models"
	"github.com/starford/gebo/internal/registry"
	"github.com/starford/gebo/internal/section"
	"github.com/starford/gebo/internal/storage"
)

// Options controls one run.
type Options struct {
	Mode     section.Mode // update policy, append or replace
	TextRefs bool         // enable literal-text reference matching
	DryRun   bool         // report intended rewrites without writing
	Workers  int          // read-pass concurrency, minimum 1
}

// Report summarises one completed run.
type Report struct {
	FilesFound   int
	FilesUpdated int
}

// Run executes one backlink pass. Enumeration and read failures abort the
// run; write failures are collected per document and returned joined after
// the write pass finishes, so one bad document does not block the rest.
func Run(ctx context.Context, store storage.Provider, logger *slog.Logger, opts Options) (*Report, error) {
	metas, err := store.List("")
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w: %w", apperr.ErrDiscovery, err)
	}

	reg := registry.Build(metas)
	strategies := extract.Strategies(opts.TextRefs)
	logger.Debug("registry built",
		slog.Int("documents", len(metas)),
		slog.Int("titles", reg.Len()))

	docs, refs, err := scan(ctx, store, metas, reg, strategies, opts.Workers)
	if err != nil {
		return nil, err
	}

	idx := backlinks.Build(scanned(docs, refs), reg)

	report := &Report{FilesFound: len(metas)}
	var writeErrs []error

	// Write pass: sequential, enumeration order.
	for i, m := range metas {
		inbound := idx[m.Path]
		if len(inbound) == 0 {
			continue
		}

		updated := section.Apply(docs[i].Content, sourceTitles(inbound), opts.Mode)
		if checksum.SumString(updated) == m.Checksum {
			// Byte-identical output, nothing to persist.
			continue
		}

		if opts.DryRun {
			logger.Info("would update", slog.String("path", m.Path), slog.Int("backlinks", len(inbound)))
			report.FilesUpdated++
			continue
		}

		if err := store.Write(m.Path, []byte(updated)); err != nil {
			logger.Warn("write failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			writeErrs = append(writeErrs, fmt.Errorf("%s: %w", m.Path, err))
			continue
		}
		logger.Debug("updated", slog.String("path", m.Path), slog.Int("backlinks", len(inbound)))
		report.FilesUpdated++
	}

	if len(writeErrs) > 0 {
		return report, fmt.Errorf("pipeline: %w: %w", apperr.ErrWrite, errors.Join(writeErrs...))
	}
	return report, nil
}

// scan reads every document and extracts its reference set. The first read
// failure aborts the whole pass: silently skipping a document would change
// every other document's backlink results.
func scan(ctx context.Context, store storage.Provider, metas []models.DocumentMeta, reg *registry.Registry, strategies []extract.Strategy, workers int) ([]models.Document, [][]string, error) {
	if workers < 1 {
		workers = 1
	}

	docs := make([]models.Document, len(metas))
	refs := make([][]string, len(metas))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range metas {
		i, m := i, m
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := store.Read(m.Path)
			if err != nil {
				return fmt.Errorf("pipeline: %w: %s: %w", apperr.ErrRead, m.Path, err)
			}
			content := string(data)
			docs[i] = models.Document{
				Path:    m.Path,
				Title:   registry.TitleOf(m.Path),
				Content: content,
			}
			refs[i] = extract.Union(content, reg.Titles(), strategies...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return docs, refs, nil
}

// scanned adapts documents and their reference sets to the index builder's input.
func scanned(docs []models.Document, refs [][]string) []backlinks.ScannedDocument {
	out := make([]backlinks.ScannedDocument, len(docs))
	for i, d := range docs {
		out[i] = backlinks.ScannedDocument{Path: d.Path, Title: d.Title, Refs: refs[i]}
	}
	return out
}

// sourceTitles projects references to the titles rendered in the section.
func sourceTitles(refs []models.Reference) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.SourceTitle
	}
	return out
}
