package dto

import (
	"encoding/xml"
	"regexp"

	"github.com/iliyamo/theatre-catalog/internal/validation"
)

var phonePattern = regexp.MustCompile(`^\+44-\d{2}-\d{3}-\d{4}$`)

// ImportCasts is the root of a casts import document.
type ImportCasts struct {
	XMLName xml.Name     `xml:"Casts"`
	Casts   []ImportCast `xml:"Cast"`
}

// ImportCast is one <Cast> element.
type ImportCast struct {
	FullName        string `xml:"FullName"`
	IsMainCharacter *bool  `xml:"IsMainCharacter"`
	PhoneNumber     string `xml:"PhoneNumber"`
	PlayID          *int   `xml:"PlayId"`
}

// Validate returns the field-constraint violations of c.
func (c ImportCast) Validate() validation.Errors {
	var errs validation.Errors
	errs.RequiredLength("FullName", c.FullName, 4, 30)
	errs.Present("IsMainCharacter", c.IsMainCharacter != nil)
	if errs.Required("PhoneNumber", c.PhoneNumber) {
		errs.Match("PhoneNumber", c.PhoneNumber, phonePattern)
	}
	if errs.Present("PlayId", c.PlayID != nil) && *c.PlayID < 1 {
		errs.Add("PlayId", "must be positive")
	}
	return errs
}
