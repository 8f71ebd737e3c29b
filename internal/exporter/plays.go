package exporter

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/iliyamo/theatre-catalog/internal/codec"
	"github.com/iliyamo/theatre-catalog/internal/dto"
	"github.com/iliyamo/theatre-catalog/internal/model"
)

const (
	premierRating      = "Premier"
	mainCharacterLabel = "Plays main character in '%s'."
)

// ExportPlays renders plays rated at most maxRating as an XML <Plays>
// document.  Plays are ordered by title, then by genre descending; only
// main characters are listed, by full name descending.
func (e *Exporter) ExportPlays(ctx context.Context, maxRating float64) (string, error) {
	plays, err := e.store.ListPlays(ctx)
	if err != nil {
		return "", fmt.Errorf("export plays: %w", err)
	}

	selected := make([]model.Play, 0, len(plays))
	for _, p := range plays {
		if p.Rating <= maxRating {
			selected = append(selected, p)
		}
	}
	slices.SortStableFunc(selected, func(a, b model.Play) int {
		if c := strings.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return cmp.Compare(b.Genre, a.Genre)
	})

	doc := dto.ExportPlays{Plays: make([]dto.ExportPlay, 0, len(selected))}
	for _, p := range selected {
		doc.Plays = append(doc.Plays, projectPlay(p))
	}
	return codec.EncodeXMLIndent(doc)
}

func projectPlay(p model.Play) dto.ExportPlay {
	rating := premierRating
	if p.Rating != 0 {
		rating = model.FormatRating(p.Rating)
	}
	x := dto.ExportPlay{
		Title:    p.Title,
		Duration: model.FormatDuration(p.Duration),
		Rating:   rating,
		Genre:    p.Genre.String(),
	}
	for _, c := range p.Casts {
		if !c.IsMainCharacter {
			continue
		}
		x.Actors.Actors = append(x.Actors.Actors, dto.ExportActor{
			FullName:      c.FullName,
			MainCharacter: fmt.Sprintf(mainCharacterLabel, p.Title),
		})
	}
	slices.SortStableFunc(x.Actors.Actors, func(a, b dto.ExportActor) int {
		return strings.Compare(b.FullName, a.FullName)
	})
	return x
}
