// Package exporter builds read-only document views of the catalog.
package exporter

import (
	"context"

	"github.com/iliyamo/theatre-catalog/internal/model"
)

// Store is the read side of the catalog needed by the exports.
type Store interface {
	ListPlays(ctx context.Context) ([]model.Play, error)
	ListTheatres(ctx context.Context) ([]model.Theatre, error)
}

// Exporter renders exports from a store.  It never writes.
type Exporter struct {
	store Store
}

// New returns an Exporter reading from store.
func New(store Store) *Exporter {
	if store == nil {
		panic("nil store passed to exporter.New")
	}
	return &Exporter{store: store}
}
