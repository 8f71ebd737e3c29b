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
	minTicketsForExport = 20
	firstIncomeRow      = 1
	lastIncomeRow       = 5
)

// ExportTheatres renders theatres with at least minHalls halls and at least
// twenty tickets as indented JSON.  The ticket count uses every ticket of
// the theatre; income and the ticket list only use rows 1-5.
func (e *Exporter) ExportTheatres(ctx context.Context, minHalls int) (string, error) {
	theatres, err := e.store.ListTheatres(ctx)
	if err != nil {
		return "", fmt.Errorf("export theatres: %w", err)
	}

	out := make([]dto.ExportTheatre, 0, len(theatres))
	for _, t := range theatres {
		if t.NumberOfHalls < minHalls || len(t.Tickets) < minTicketsForExport {
			continue
		}
		out = append(out, projectTheatre(t))
	}
	slices.SortStableFunc(out, func(a, b dto.ExportTheatre) int {
		if c := cmp.Compare(b.Halls, a.Halls); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return codec.EncodeJSONIndent(out)
}

func projectTheatre(t model.Theatre) dto.ExportTheatre {
	x := dto.ExportTheatre{
		Name:    t.Name,
		Halls:   t.NumberOfHalls,
		Tickets: []dto.ExportTicket{},
	}
	for _, tk := range t.Tickets {
		if tk.RowNumber < firstIncomeRow || tk.RowNumber > lastIncomeRow {
			continue
		}
		price := dto.MoneyFromFloat(tk.Price)
		x.TotalIncome += price
		x.Tickets = append(x.Tickets, dto.ExportTicket{Price: price, RowNumber: tk.RowNumber})
	}
	slices.SortStableFunc(x.Tickets, func(a, b dto.ExportTicket) int {
		return cmp.Compare(b.Price, a.Price)
	})
	return x
}
