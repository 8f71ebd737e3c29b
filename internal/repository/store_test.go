package repository

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	_ "modernc.org/sqlite"

	"github.com/iliyamo/theatre-catalog/internal/model"
)

const sqliteSchema = `
CREATE TABLE plays (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  duration_seconds INTEGER NOT NULL,
  rating DOUBLE NOT NULL,
  genre INTEGER NOT NULL,
  description TEXT NOT NULL,
  screenwriter TEXT NOT NULL
);
CREATE TABLE casts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  full_name TEXT NOT NULL,
  is_main_character INTEGER NOT NULL,
  phone_number TEXT NOT NULL,
  play_id INTEGER NOT NULL REFERENCES plays (id)
);
CREATE TABLE theatres (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  number_of_halls INTEGER NOT NULL,
  director TEXT NOT NULL
);
CREATE TABLE tickets (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  price REAL NOT NULL,
  row_no INTEGER NOT NULL,
  play_id INTEGER NOT NULL REFERENCES plays (id),
  theatre_id INTEGER NOT NULL REFERENCES theatres (id)
);`

// store is the behaviour shared by CatalogRepo and MemoryStore.
type store interface {
	Commit(ctx context.Context, b Batch) error
	ListPlays(ctx context.Context) ([]model.Play, error)
	ListTheatres(ctx context.Context) ([]model.Theatre, error)
}

type StoreSuite struct {
	suite.Suite
	newStore func(t *testing.T) store
	store    store
	ctx      context.Context
}

func (s *StoreSuite) SetupTest() {
	s.store = s.newStore(s.T())
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(*testing.T) store { return NewMemoryStore() }})
}

func TestCatalogRepoSuite(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(t *testing.T) store {
		db, err := sql.Open("sqlite", ":memory:")
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		// one connection so every statement sees the same in-memory database
		db.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = db.Close() })
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			t.Fatalf("enable foreign keys: %v", err)
		}
		if _, err := db.Exec(sqliteSchema); err != nil {
			t.Fatalf("create schema: %v", err)
		}
		return NewCatalogRepo(db)
	}})
}

func (s *StoreSuite) seedPlays(titles ...string) {
	plays := make([]model.Play, 0, len(titles))
	for _, title := range titles {
		plays = append(plays, model.Play{
			Title:        title,
			Duration:     2*time.Hour + 15*time.Minute,
			Rating:       7.25,
			Genre:        model.GenreComedy,
			Description:  "description of " + title,
			Screenwriter: "Some Writer",
		})
	}
	s.Require().NoError(s.store.Commit(s.ctx, Batch{Plays: plays}))
}

func (s *StoreSuite) TestEmptyStore() {
	plays, err := s.store.ListPlays(s.ctx)
	s.Require().NoError(err)
	s.Empty(plays)

	theatres, err := s.store.ListTheatres(s.ctx)
	s.Require().NoError(err)
	s.Empty(theatres)

	s.NoError(s.store.Commit(s.ctx, Batch{}))
}

func (s *StoreSuite) TestPlaysRoundTrip() {
	s.seedPlays("Hamlet", "Othello")

	plays, err := s.store.ListPlays(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(plays, 2)
	s.Equal(uint64(1), plays[0].ID)
	s.Equal("Hamlet", plays[0].Title)
	s.Equal(2*time.Hour+15*time.Minute, plays[0].Duration)
	s.InDelta(7.25, plays[0].Rating, 1e-9)
	s.Equal(model.GenreComedy, plays[0].Genre)
	s.Equal("Othello", plays[1].Title)
}

func (s *StoreSuite) TestCastsAttachToPlays() {
	s.seedPlays("Hamlet", "Othello")
	s.Require().NoError(s.store.Commit(s.ctx, Batch{Casts: []model.Cast{
		{FullName: "Ian McKellen", IsMainCharacter: true, PhoneNumber: "+44-11-111-1111", PlayID: 2},
		{FullName: "Judi Dench", IsMainCharacter: false, PhoneNumber: "+44-22-222-2222", PlayID: 1},
		{FullName: "Maggie Smith", IsMainCharacter: true, PhoneNumber: "+44-33-333-3333", PlayID: 2},
	}}))

	plays, err := s.store.ListPlays(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(plays[0].Casts, 1)
	s.Equal("Judi Dench", plays[0].Casts[0].FullName)
	s.False(plays[0].Casts[0].IsMainCharacter)
	s.Require().Len(plays[1].Casts, 2)
	s.True(plays[1].Casts[0].IsMainCharacter)
	s.Equal("Maggie Smith", plays[1].Casts[1].FullName)
}

func (s *StoreSuite) TestTheatresWithTickets() {
	s.seedPlays("Hamlet")
	s.Require().NoError(s.store.Commit(s.ctx, Batch{Theatres: []model.Theatre{
		{Name: "Globe", NumberOfHalls: 4, Director: "Mark Rylance", Tickets: []model.Ticket{
			{Price: 25.5, RowNumber: 2, PlayID: 1},
			{Price: 40, RowNumber: 7, PlayID: 1},
		}},
		{Name: "Empty Hall", NumberOfHalls: 1, Director: "Nobody Here"},
	}}))

	theatres, err := s.store.ListTheatres(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(theatres, 2)
	s.Equal("Globe", theatres[0].Name)
	s.Equal(4, theatres[0].NumberOfHalls)
	s.Require().Len(theatres[0].Tickets, 2)
	s.InDelta(25.5, theatres[0].Tickets[0].Price, 1e-9)
	s.Equal(7, theatres[0].Tickets[1].RowNumber)
	s.Equal(theatres[0].ID, theatres[0].Tickets[1].TheatreID)
	s.Empty(theatres[1].Tickets)
}

func (s *StoreSuite) TestCommitIsAtomic() {
	s.seedPlays("Hamlet")
	err := s.store.Commit(s.ctx, Batch{Casts: []model.Cast{
		{FullName: "Valid Actor", PhoneNumber: "+44-11-111-1111", PlayID: 1},
		{FullName: "Orphan Actor", PhoneNumber: "+44-11-111-1111", PlayID: 99},
	}})
	s.Require().ErrorIs(err, ErrUnknownPlay)

	plays, err := s.store.ListPlays(s.ctx)
	s.Require().NoError(err)
	s.Empty(plays[0].Casts)
}

func (s *StoreSuite) TestTicketWithUnknownPlayRejectsBatch() {
	s.seedPlays("Hamlet")
	err := s.store.Commit(s.ctx, Batch{Theatres: []model.Theatre{
		{Name: "Globe", NumberOfHalls: 4, Director: "Mark Rylance", Tickets: []model.Ticket{
			{Price: 25.5, RowNumber: 2, PlayID: 1},
			{Price: 30, RowNumber: 3, PlayID: 7},
		}},
	}})
	s.Require().ErrorIs(err, ErrUnknownPlay)

	theatres, err := s.store.ListTheatres(s.ctx)
	s.Require().NoError(err)
	s.Empty(theatres)
}

func (s *StoreSuite) TestCastMayReferencePlayFromSameBatch() {
	s.Require().NoError(s.store.Commit(s.ctx, Batch{
		Plays: []model.Play{{
			Title: "Hamlet", Duration: 2 * time.Hour, Rating: 9, Genre: model.GenreDrama,
			Description: "Prince of Denmark", Screenwriter: "Will Shakespeare",
		}},
		Casts: []model.Cast{{FullName: "Ian McKellen", IsMainCharacter: true, PhoneNumber: "+44-11-111-1111", PlayID: 1}},
	}))

	plays, err := s.store.ListPlays(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(plays, 1)
	s.Require().Len(plays[0].Casts, 1)
	s.Equal("Ian McKellen", plays[0].Casts[0].FullName)
}

func (s *StoreSuite) TestRatingKeepsFullPrecision() {
	s.Require().NoError(s.store.Commit(s.ctx, Batch{Plays: []model.Play{{
		Title: "Hamlet", Duration: 2 * time.Hour, Rating: 7.555, Genre: model.GenreDrama,
		Description: "Prince of Denmark", Screenwriter: "Will Shakespeare",
	}}}))

	plays, err := s.store.ListPlays(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(plays, 1)
	s.Equal(7.555, plays[0].Rating)
}

// Ratings are reported back exactly as imported, so the MySQL column must
// not round them to a fixed scale.
func TestSchemaStoresRatingUnrounded(t *testing.T) {
	ddl, err := os.ReadFile("../../db/schema.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	for _, line := range strings.Split(string(ddl), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "rating" {
			if fields[1] != "DOUBLE" {
				t.Fatalf("plays.rating is %s, want DOUBLE", fields[1])
			}
			return
		}
	}
	t.Fatal("plays.rating column not found")
}
