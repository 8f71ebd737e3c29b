package model

// Cast is an actor playing in a play.  PlayID references plays.id; the
// store is responsible for referential integrity.
type Cast struct {
	ID              uint64 // casts.id
	FullName        string // casts.full_name
	IsMainCharacter bool   // casts.is_main_character
	PhoneNumber     string // casts.phone_number
	PlayID          uint64 // casts.play_id
}
