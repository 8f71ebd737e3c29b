package model

// Ticket is a seat sold by a theatre for a play.  TheatreID is assigned by
// the store when the owning theatre is inserted.
type Ticket struct {
	ID        uint64  // tickets.id
	Price     float64 // tickets.price
	RowNumber int     // tickets.row_no
	PlayID    uint64  // tickets.play_id
	TheatreID uint64  // tickets.theatre_id
}
