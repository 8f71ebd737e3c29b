package dto

import (
	"encoding/xml"

	"github.com/iliyamo/theatre-catalog/internal/validation"
)

// ImportPlays is the root of a plays import document.
type ImportPlays struct {
	XMLName xml.Name     `xml:"Plays"`
	Plays   []ImportPlay `xml:"Play"`
}

// ImportPlay is one <Play> element.  Duration and Genre stay textual here;
// the importer parses them after field validation passes.
type ImportPlay struct {
	Title        string  `xml:"Title"`
	Duration     string  `xml:"Duration"`
	Rating       float64 `xml:"Rating"`
	Genre        string  `xml:"Genre"`
	Description  string  `xml:"Description"`
	Screenwriter string  `xml:"Screenwriter"`
}

// Validate returns the field-constraint violations of p.
func (p ImportPlay) Validate() validation.Errors {
	var errs validation.Errors
	errs.RequiredLength("Title", p.Title, 4, 50)
	errs.Required("Duration", p.Duration)
	errs.FloatRange("Rating", p.Rating, 0, 10)
	errs.Required("Genre", p.Genre)
	if errs.Required("Description", p.Description) {
		errs.Length("Description", p.Description, 0, 700)
	}
	errs.RequiredLength("Screenwriter", p.Screenwriter, 4, 30)
	return errs
}
