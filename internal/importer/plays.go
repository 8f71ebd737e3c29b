package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/iliyamo/theatre-catalog/internal/codec"
	"github.com/iliyamo/theatre-catalog/internal/dto"
	"github.com/iliyamo/theatre-catalog/internal/model"
	"github.com/iliyamo/theatre-catalog/internal/repository"
)

// minPlayDuration is exclusive: a play must run longer than this.
const minPlayDuration = time.Hour

// ImportPlays imports a <Plays> XML document.
func (i *Importer) ImportPlays(ctx context.Context, doc string) (*Report, error) {
	var in dto.ImportPlays
	if err := codec.DecodeXML(doc, &in); err != nil {
		return nil, fmt.Errorf("import plays: %w", err)
	}

	r := &Report{}
	var batch repository.Batch
	for _, rec := range in.Plays {
		p, ok := buildPlay(rec)
		if !ok {
			r.fail()
			continue
		}
		batch.Plays = append(batch.Plays, p)
		r.success(successfulImportPlay, p.Title, p.Genre, model.FormatRating(p.Rating))
	}
	return i.commit(ctx, "plays", batch, r)
}

// buildPlay applies field validation and then the play rules: canonical
// duration longer than an hour and a known genre.
func buildPlay(rec dto.ImportPlay) (model.Play, bool) {
	if len(rec.Validate()) > 0 {
		return model.Play{}, false
	}
	d, err := model.ParseDuration(rec.Duration)
	if err != nil || d <= minPlayDuration {
		return model.Play{}, false
	}
	g, ok := model.ParseGenre(rec.Genre)
	if !ok {
		return model.Play{}, false
	}
	return model.Play{
		Title:        rec.Title,
		Duration:     d,
		Rating:       rec.Rating,
		Genre:        g,
		Description:  rec.Description,
		Screenwriter: rec.Screenwriter,
	}, true
}
