package model

import (
	"strconv"
	"time"
)

// Play represents a theatrical play in the catalog.  Plays are created by
// the import pipeline and never modified afterwards.  Casts is populated
// only when the play is loaded through the store's read path.
//
// Fields:
//  ID           – primary key identifier.
//  Title        – play title (4-50 characters).
//  Duration     – running time, strictly longer than one hour.
//  Rating       – 0.00-10.00; zero means the play has not been reviewed yet.
//  Genre        – one of the fixed genres.
//  Description  – free text up to 700 characters.
//  Screenwriter – author name (4-30 characters).
type Play struct {
	ID           uint64        // plays.id
	Title        string        // plays.title
	Duration     time.Duration // plays.duration_seconds
	Rating       float64       // plays.rating
	Genre        Genre         // plays.genre
	Description  string        // plays.description
	Screenwriter string        // plays.screenwriter
	Casts        []Cast
}

// FormatRating renders a rating in its shortest decimal form, e.g. "7.5".
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
