package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/theatre-catalog/internal/model"
)

// insertTheatreTx inserts t, records the generated id on it and then
// writes its tickets in bulk.
func insertTheatreTx(ctx context.Context, tx *sql.Tx, t *model.Theatre) error {
	const q = `INSERT INTO theatres (name, number_of_halls, director) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, t.Name, t.NumberOfHalls, t.Director)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)

	rows := make([][]any, 0, len(t.Tickets))
	for i := range t.Tickets {
		t.Tickets[i].TheatreID = t.ID
		tk := t.Tickets[i]
		rows = append(rows, []any{tk.Price, tk.RowNumber, tk.PlayID, tk.TheatreID})
	}
	return bulkInsertTx(ctx, tx,
		`INSERT INTO tickets (price, row_no, play_id, theatre_id) VALUES `, rows)
}

// ListTheatres returns every theatre ordered by id with its full ticket
// collection attached.
func (r *CatalogRepo) ListTheatres(ctx context.Context) ([]model.Theatre, error) {
	theatres, err := r.queryTheatres(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := r.queryTickets(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]int, len(theatres))
	for i, t := range theatres {
		byID[t.ID] = i
	}
	for _, tk := range tickets {
		if i, ok := byID[tk.TheatreID]; ok {
			theatres[i].Tickets = append(theatres[i].Tickets, tk)
		}
	}
	return theatres, nil
}

func (r *CatalogRepo) queryTheatres(ctx context.Context) ([]model.Theatre, error) {
	const q = `SELECT id, name, number_of_halls, director FROM theatres ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Theatre
	for rows.Next() {
		var t model.Theatre
		if err := rows.Scan(&t.ID, &t.Name, &t.NumberOfHalls, &t.Director); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepo) queryTickets(ctx context.Context) ([]model.Ticket, error) {
	const q = `SELECT id, price, row_no, play_id, theatre_id FROM tickets ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Ticket
	for rows.Next() {
		var tk model.Ticket
		if err := rows.Scan(&tk.ID, &tk.Price, &tk.RowNumber, &tk.PlayID, &tk.TheatreID); err != nil {
			return nil, err
		}
		out = append(out, tk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
