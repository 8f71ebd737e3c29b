package dto

import "github.com/iliyamo/theatre-catalog/internal/validation"

// ImportTheatre is one element of the theatres JSON array.  Numeric fields
// are pointers so that a missing value can be told apart from zero.
type ImportTheatre struct {
	Name          string         `json:"Name"`
	NumberOfHalls *int           `json:"NumberOfHalls"`
	Director      string         `json:"Director"`
	Tickets       []ImportTicket `json:"Tickets"`
}

// ImportTicket is a ticket nested inside an ImportTheatre.
type ImportTicket struct {
	Price     *float64 `json:"Price"`
	RowNumber *int     `json:"RowNumber"`
	PlayID    *int     `json:"PlayId"`
}

// Validate checks the theatre itself.  Tickets are validated one by one by
// the importer so that a bad ticket does not reject its theatre.
func (t ImportTheatre) Validate() validation.Errors {
	var errs validation.Errors
	errs.RequiredLength("Name", t.Name, 4, 30)
	if errs.Present("NumberOfHalls", t.NumberOfHalls != nil) {
		errs.IntRange("NumberOfHalls", *t.NumberOfHalls, 1, 10)
	}
	errs.RequiredLength("Director", t.Director, 4, 30)
	return errs
}

// Validate returns the field-constraint violations of t.
func (t ImportTicket) Validate() validation.Errors {
	var errs validation.Errors
	if errs.Present("Price", t.Price != nil) {
		errs.FloatRange("Price", *t.Price, 1, 100)
	}
	if errs.Present("RowNumber", t.RowNumber != nil) {
		errs.IntRange("RowNumber", *t.RowNumber, 1, 10)
	}
	if errs.Present("PlayId", t.PlayID != nil) && *t.PlayID < 1 {
		errs.Add("PlayId", "must be positive")
	}
	return errs
}
