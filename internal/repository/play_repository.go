package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/theatre-catalog/internal/model"
)

func insertPlaysTx(ctx context.Context, tx *sql.Tx, plays []model.Play) error {
	rows := make([][]any, 0, len(plays))
	for _, p := range plays {
		rows = append(rows, []any{p.Title, int64(p.Duration / time.Second), p.Rating, int(p.Genre), p.Description, p.Screenwriter})
	}
	return bulkInsertTx(ctx, tx,
		`INSERT INTO plays (title, duration_seconds, rating, genre, description, screenwriter) VALUES `, rows)
}

func insertCastsTx(ctx context.Context, tx *sql.Tx, casts []model.Cast) error {
	rows := make([][]any, 0, len(casts))
	for _, c := range casts {
		rows = append(rows, []any{c.FullName, c.IsMainCharacter, c.PhoneNumber, c.PlayID})
	}
	return bulkInsertTx(ctx, tx,
		`INSERT INTO casts (full_name, is_main_character, phone_number, play_id) VALUES `, rows)
}

// ListPlays returns every play ordered by id, each with its casts attached
// in id order.
func (r *CatalogRepo) ListPlays(ctx context.Context) ([]model.Play, error) {
	plays, err := r.queryPlays(ctx)
	if err != nil {
		return nil, err
	}
	casts, err := r.queryCasts(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]int, len(plays))
	for i, p := range plays {
		byID[p.ID] = i
	}
	for _, c := range casts {
		if i, ok := byID[c.PlayID]; ok {
			plays[i].Casts = append(plays[i].Casts, c)
		}
	}
	return plays, nil
}

func (r *CatalogRepo) queryPlays(ctx context.Context) ([]model.Play, error) {
	const q = `SELECT id, title, duration_seconds, rating, genre, description, screenwriter
	           FROM plays ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Play
	for rows.Next() {
		var (
			p       model.Play
			seconds int64
			genre   int
		)
		if err := rows.Scan(&p.ID, &p.Title, &seconds, &p.Rating, &genre, &p.Description, &p.Screenwriter); err != nil {
			return nil, err
		}
		p.Duration = time.Duration(seconds) * time.Second
		p.Genre = model.Genre(genre)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepo) queryCasts(ctx context.Context) ([]model.Cast, error) {
	const q = `SELECT id, full_name, is_main_character, phone_number, play_id FROM casts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Cast
	for rows.Next() {
		var c model.Cast
		if err := rows.Scan(&c.ID, &c.FullName, &c.IsMainCharacter, &c.PhoneNumber, &c.PlayID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
