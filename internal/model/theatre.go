package model

// Theatre is a venue that sells tickets for plays.  A theatre owns its
// tickets; they are persisted together in a single commit.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – theatre name (4-30 characters).
//  NumberOfHalls – hall count, 1-10.
//  Director      – director name (4-30 characters).
//  Tickets       – tickets sold by this theatre.
type Theatre struct {
	ID            uint64   // theatres.id
	Name          string   // theatres.name
	NumberOfHalls int      // theatres.number_of_halls
	Director      string   // theatres.director
	Tickets       []Ticket // tickets.theatre_id = theatres.id
}
