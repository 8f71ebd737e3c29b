package model

// Genre classifies a play.  The numeric values are persisted in the
// plays.genre column and drive the ordering used by the play export.
type Genre uint8

const (
	GenreDrama   Genre = 1
	GenreComedy  Genre = 2
	GenreRomance Genre = 3
	GenreMusical Genre = 4
)

var genreNames = map[Genre]string{
	GenreDrama:   "Drama",
	GenreComedy:  "Comedy",
	GenreRomance: "Romance",
	GenreMusical: "Musical",
}

var genresByName = map[string]Genre{
	"Drama":   GenreDrama,
	"Comedy":  GenreComedy,
	"Romance": GenreRomance,
	"Musical": GenreMusical,
}

// ParseGenre maps the canonical genre name to its variant.  Matching is
// case-sensitive; anything else reports false.
func ParseGenre(s string) (Genre, bool) {
	g, ok := genresByName[s]
	return g, ok
}

// String returns the canonical name, or an empty string for unknown values.
func (g Genre) String() string {
	return genreNames[g]
}

// Valid reports whether g is one of the known genres.
func (g Genre) Valid() bool {
	_, ok := genreNames[g]
	return ok
}
