package dto

import (
	"encoding/xml"
	"fmt"
	"math"
)

// Money is an amount in cents.  It marshals to JSON as a number with two
// decimal places.
type Money int64

// MoneyFromFloat rounds a price to whole cents.
func MoneyFromFloat(f float64) Money {
	return Money(math.Round(f * 100))
}

// MarshalJSON renders m as e.g. 12.50.
func (m Money) MarshalJSON() ([]byte, error) {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return []byte(fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)), nil
}

// ExportTheatre is one theatre in the theatres export.
type ExportTheatre struct {
	Name        string         `json:"Name"`
	Halls       int            `json:"Halls"`
	TotalIncome Money          `json:"TotalIncome"`
	Tickets     []ExportTicket `json:"Tickets"`
}

// ExportTicket is a ticket of an exported theatre.
type ExportTicket struct {
	Price     Money `json:"Price"`
	RowNumber int   `json:"RowNumber"`
}

// ExportPlays is the root element of the plays export.
type ExportPlays struct {
	XMLName xml.Name     `xml:"Plays"`
	Plays   []ExportPlay `xml:"Play"`
}

// ExportPlay renders a play as attributes plus its main actors.
type ExportPlay struct {
	Title    string       `xml:"Title,attr"`
	Duration string       `xml:"Duration,attr"`
	Rating   string       `xml:"Rating,attr"`
	Genre    string       `xml:"Genre,attr"`
	Actors   ExportActors `xml:"Actors"`
}

// ExportActors wraps the actor list so an empty <Actors> element is still
// written.
type ExportActors struct {
	Actors []ExportActor `xml:"Actor"`
}

// ExportActor is a main-character cast member.
type ExportActor struct {
	FullName      string `xml:"FullName,attr"`
	MainCharacter string `xml:"MainCharacter,attr"`
}
