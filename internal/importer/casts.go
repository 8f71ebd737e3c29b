package importer

import (
	"context"
	"fmt"

	"github.com/iliyamo/theatre-catalog/internal/codec"
	"github.com/iliyamo/theatre-catalog/internal/dto"
	"github.com/iliyamo/theatre-catalog/internal/model"
	"github.com/iliyamo/theatre-catalog/internal/repository"
)

// ImportCasts imports a <Casts> XML document.  Casts have no rules beyond
// field validation.
func (i *Importer) ImportCasts(ctx context.Context, doc string) (*Report, error) {
	var in dto.ImportCasts
	if err := codec.DecodeXML(doc, &in); err != nil {
		return nil, fmt.Errorf("import casts: %w", err)
	}

	r := &Report{}
	var batch repository.Batch
	for _, rec := range in.Casts {
		if len(rec.Validate()) > 0 {
			r.fail()
			continue
		}
		c := model.Cast{
			FullName:        rec.FullName,
			IsMainCharacter: *rec.IsMainCharacter,
			PhoneNumber:     rec.PhoneNumber,
			PlayID:          uint64(*rec.PlayID),
		}
		batch.Casts = append(batch.Casts, c)
		role := "lesser"
		if c.IsMainCharacter {
			role = "main"
		}
		r.success(successfulImportActor, c.FullName, role)
	}
	return i.commit(ctx, "casts", batch, r)
}
