package handler // handler defines http handlers

import (
	"context"

	"github.com/iliyamo/theatre-catalog/internal/exporter"
	"github.com/iliyamo/theatre-catalog/internal/importer"
	"github.com/iliyamo/theatre-catalog/internal/queue"
)

// CacheInvalidator drops cached export documents after the catalog changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// EventPublisher announces committed imports.
type EventPublisher interface {
	PublishImportCompleted(ctx context.Context, ev queue.ImportCompletedEvent) error
}

// CatalogHandler bundles the import and export pipelines behind HTTP.
type CatalogHandler struct {
	Importer       *importer.Importer // Importer runs the import pipelines
	Exporter       *exporter.Exporter // Exporter renders the exports
	Cache          CacheInvalidator   // Cache is invalidated after each committed import
	Publisher      EventPublisher     // Publisher is optional; nil disables events
	MaxImportBytes int64              // MaxImportBytes caps import request bodies
}

// NewCatalogHandler constructs a CatalogHandler and panics if a required
// dependency is nil.
func NewCatalogHandler(imp *importer.Importer, exp *exporter.Exporter, cache CacheInvalidator, pub EventPublisher, maxImportBytes int64) *CatalogHandler {
	if imp == nil || exp == nil || cache == nil {
		panic("nil dependency passed to NewCatalogHandler")
	}
	if maxImportBytes <= 0 {
		maxImportBytes = 10 << 20
	}
	return &CatalogHandler{
		Importer:       imp,
		Exporter:       exp,
		Cache:          cache,
		Publisher:      pub,
		MaxImportBytes: maxImportBytes,
	}
}
