package importer

import (
	"context"
	"fmt"

	"github.com/iliyamo/theatre-catalog/internal/codec"
	"github.com/iliyamo/theatre-catalog/internal/dto"
	"github.com/iliyamo/theatre-catalog/internal/model"
	"github.com/iliyamo/theatre-catalog/internal/repository"
)

// ImportTheatres imports a JSON array of theatres with nested tickets.
// An invalid ticket is reported and dropped on its own; its theatre is
// still imported with whatever tickets passed.
func (i *Importer) ImportTheatres(ctx context.Context, doc string) (*Report, error) {
	var in []dto.ImportTheatre
	if err := codec.DecodeJSON(doc, &in); err != nil {
		return nil, fmt.Errorf("import theatres: %w", err)
	}

	r := &Report{}
	var batch repository.Batch
	for _, rec := range in {
		if len(rec.Validate()) > 0 {
			r.fail()
			continue
		}
		t := model.Theatre{
			Name:          rec.Name,
			NumberOfHalls: *rec.NumberOfHalls,
			Director:      rec.Director,
		}
		for _, tr := range rec.Tickets {
			if len(tr.Validate()) > 0 {
				r.fail()
				continue
			}
			t.Tickets = append(t.Tickets, model.Ticket{
				Price:     *tr.Price,
				RowNumber: *tr.RowNumber,
				PlayID:    uint64(*tr.PlayID),
			})
		}
		batch.Theatres = append(batch.Theatres, t)
		r.success(successfulImportTheatre, t.Name, len(t.Tickets))
	}
	return i.commit(ctx, "theatres", batch, r)
}
