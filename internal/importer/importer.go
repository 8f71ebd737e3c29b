// Package importer turns decoded transfer records into catalog entities.
// Every record is validated on its own and reported with one line; the
// accepted records of a call are committed to the store in one batch.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/iliyamo/theatre-catalog/internal/repository"
)

// Report line templates.
const (
	errorMessage            = "Invalid data!"
	successfulImportPlay    = "Successfully imported %s with genre %s and a rating of %s!"
	successfulImportActor   = "Successfully imported actor %s as a %s character!"
	successfulImportTheatre = "Successfully imported theatre %s with #%d tickets!"
)

// ErrCommitFailed wraps a store failure at the end of an import.  None of
// the call's records are persisted when it is returned.
var ErrCommitFailed = errors.New("import commit failed")

// Store receives the accepted batch of an import call.
type Store interface {
	Commit(ctx context.Context, b repository.Batch) error
}

// Importer runs the import pipelines against a store.
type Importer struct {
	store Store
}

// New returns an Importer that commits to store.
func New(store Store) *Importer {
	if store == nil {
		panic("nil store passed to importer.New")
	}
	return &Importer{store: store}
}

// Report is the per-record outcome of an import call, in input order.
type Report struct {
	lines    []string
	accepted int
	rejected int
}

func (r *Report) success(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
	r.accepted++
}

func (r *Report) fail() {
	r.lines = append(r.lines, errorMessage)
	r.rejected++
}

// Lines returns the report lines.
func (r *Report) Lines() []string { return r.lines }

// Accepted is the number of success lines.
func (r *Report) Accepted() int { return r.accepted }

// Rejected is the number of "Invalid data!" lines.
func (r *Report) Rejected() int { return r.rejected }

// String joins the lines with newlines, without a trailing one.
func (r *Report) String() string { return strings.Join(r.lines, "\n") }

// commit hands the batch to the store and logs the outcome.
func (i *Importer) commit(ctx context.Context, family string, b repository.Batch, r *Report) (*Report, error) {
	if err := i.store.Commit(ctx, b); err != nil {
		log.Printf("importer: %s commit failed: %v", family, err)
		return nil, fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}
	log.Printf("importer: %s accepted=%d rejected=%d", family, r.accepted, r.rejected)
	return r, nil
}
