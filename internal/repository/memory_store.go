package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/iliyamo/theatre-catalog/internal/model"
)

// MemoryStore is an in-process catalog store.  Commits are serialised by a
// mutex and validated before anything is applied, so a failing batch leaves
// the store untouched.
type MemoryStore struct {
	mu       sync.RWMutex
	ids      struct{ play, cast, theatre, ticket uint64 }
	plays    []model.Play
	casts    []model.Cast
	theatres []model.Theatre
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Commit appends b atomically.  Casts and tickets must reference a play
// that is already stored or that is part of the same batch once ids are
// assigned; otherwise ErrUnknownPlay is returned and nothing is written.
func (s *MemoryStore) Commit(ctx context.Context, b Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[uint64]bool, len(s.plays)+len(b.Plays))
	for _, p := range s.plays {
		known[p.ID] = true
	}
	ids := s.ids
	plays := make([]model.Play, 0, len(b.Plays))
	for _, p := range b.Plays {
		ids.play++
		p.ID = ids.play
		p.Casts = nil
		known[p.ID] = true
		plays = append(plays, p)
	}
	casts := make([]model.Cast, 0, len(b.Casts))
	for _, c := range b.Casts {
		if !known[c.PlayID] {
			return fmt.Errorf("%w: cast %q references play %d", ErrUnknownPlay, c.FullName, c.PlayID)
		}
		ids.cast++
		c.ID = ids.cast
		casts = append(casts, c)
	}
	theatres := make([]model.Theatre, 0, len(b.Theatres))
	for _, t := range b.Theatres {
		ids.theatre++
		t.ID = ids.theatre
		tickets := make([]model.Ticket, 0, len(t.Tickets))
		for _, tk := range t.Tickets {
			if !known[tk.PlayID] {
				return fmt.Errorf("%w: ticket of theatre %q references play %d", ErrUnknownPlay, t.Name, tk.PlayID)
			}
			ids.ticket++
			tk.ID = ids.ticket
			tk.TheatreID = t.ID
			tickets = append(tickets, tk)
		}
		t.Tickets = tickets
		theatres = append(theatres, t)
	}

	s.ids = ids
	s.plays = append(s.plays, plays...)
	s.casts = append(s.casts, casts...)
	s.theatres = append(s.theatres, theatres...)
	return nil
}

// ListPlays returns copies of all plays with their casts attached.
func (s *MemoryStore) ListPlays(ctx context.Context) ([]model.Play, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Play, len(s.plays))
	copy(out, s.plays)
	for i := range out {
		for _, c := range s.casts {
			if c.PlayID == out[i].ID {
				out[i].Casts = append(out[i].Casts, c)
			}
		}
	}
	return out, nil
}

// ListTheatres returns copies of all theatres with their tickets.
func (s *MemoryStore) ListTheatres(ctx context.Context) ([]model.Theatre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Theatre, len(s.theatres))
	for i, t := range s.theatres {
		t.Tickets = slices.Clone(t.Tickets)
		out[i] = t
	}
	return out, nil
}
