// Package repository contains data access logic for the theatre catalog.
// CatalogRepo persists plays, casts, theatres and tickets in MySQL;
// MemoryStore keeps the same data in process memory.
package repository

import (
	"context"      // context carries deadlines to DB operations
	"database/sql" // sql provides DB primitives
	"fmt"          // fmt wraps ErrUnknownPlay with the offending id
	"strings"      // strings builds multi-row INSERT statements

	"github.com/iliyamo/theatre-catalog/internal/model"
)

// insertChunk bounds the number of rows written by one multi-row INSERT so
// that large imports stay under the driver placeholder limits.
const insertChunk = 500

// Batch groups the entities accepted by a single import call.  Theatres
// carry their tickets.  A batch is committed as a whole or not at all.
type Batch struct {
	Plays    []model.Play
	Casts    []model.Cast
	Theatres []model.Theatre
}

// Len returns the number of top-level records in the batch.
func (b Batch) Len() int {
	return len(b.Plays) + len(b.Casts) + len(b.Theatres)
}

// playRefs returns the distinct play ids referenced by casts and tickets,
// in first-seen order.
func (b Batch) playRefs() []uint64 {
	seen := make(map[uint64]bool)
	var ids []uint64
	add := func(id uint64) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, c := range b.Casts {
		add(c.PlayID)
	}
	for _, t := range b.Theatres {
		for _, tk := range t.Tickets {
			add(tk.PlayID)
		}
	}
	return ids
}

// CatalogRepo reads and writes the catalog tables.  See db/schema.sql for
// the expected layout.
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo constructs a CatalogRepo with the given DB handle.
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// Commit appends every entity of b inside one transaction.  Any failure
// rolls the whole batch back.  An empty batch is a no-op.
func (r *CatalogRepo) Commit(ctx context.Context, b Batch) (err error) {
	if b.Len() == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertPlaysTx(ctx, tx, b.Plays); err != nil {
		return err
	}
	if err = checkPlayRefsTx(ctx, tx, b.playRefs()); err != nil {
		return err
	}
	if err = insertCastsTx(ctx, tx, b.Casts); err != nil {
		return err
	}
	for i := range b.Theatres {
		if err = insertTheatreTx(ctx, tx, &b.Theatres[i]); err != nil {
			return err
		}
	}
	err = tx.Commit()
	return err
}

// checkPlayRefsTx fails with ErrUnknownPlay when any of ids is missing from
// the plays table.  Plays inserted earlier in tx are visible to the check.
func checkPlayRefsTx(ctx context.Context, tx *sql.Tx, ids []uint64) error {
	for start := 0; start < len(ids); start += insertChunk {
		chunk := ids[start:min(start+insertChunk, len(ids))]
		q := `SELECT id FROM plays WHERE id IN (` +
			strings.TrimSuffix(strings.Repeat("?, ", len(chunk)), ", ") + `)`
		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}
		rows, err := tx.QueryContext(ctx, q, args...)
		if err != nil {
			return err
		}
		found := make(map[uint64]bool, len(chunk))
		for rows.Next() {
			var id uint64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			found[id] = true
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return err
		}
		for _, id := range chunk {
			if !found[id] {
				return fmt.Errorf("%w: play %d", ErrUnknownPlay, id)
			}
		}
	}
	return nil
}

// bulkInsertTx writes rows with one INSERT per chunk.  prefix is the
// statement up to and including VALUES; each row contributes len(row)
// placeholders.
func bulkInsertTx(ctx context.Context, tx *sql.Tx, prefix string, rows [][]any) error {
	for start := 0; start < len(rows); start += insertChunk {
		end := min(start+insertChunk, len(rows))
		var q strings.Builder
		q.WriteString(prefix)
		args := make([]any, 0, (end-start)*len(rows[start]))
		for i, row := range rows[start:end] {
			if i > 0 {
				q.WriteString(",")
			}
			q.WriteString("(")
			q.WriteString(strings.TrimSuffix(strings.Repeat("?, ", len(row)), ", "))
			q.WriteString(")")
			args = append(args, row...)
		}
		if _, err := tx.ExecContext(ctx, q.String(), args...); err != nil {
			return err
		}
	}
	return nil
}
