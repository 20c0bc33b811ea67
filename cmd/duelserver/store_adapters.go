package main

import (
	"context"

	"github.com/udisondev/duels/internal/arena"
	"github.com/udisondev/duels/internal/db"
)

// arenaStoreAdapter adapts db.ArenaRepository to arena.Store.
type arenaStoreAdapter struct {
	repo *db.ArenaRepository
}

func (a *arenaStoreAdapter) Load(ctx context.Context) ([]arena.Record, error) {
	rows, err := a.repo.LoadArenas(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]arena.Record, len(rows))
	for i, r := range rows {
		result[i] = recordFromRow(r)
	}
	return result, nil
}

func (a *arenaStoreAdapter) Save(ctx context.Context, records []arena.Record) error {
	rows := make([]db.ArenaRow, len(records))
	for i, rec := range records {
		rows[i] = rowFromRecord(rec)
	}
	return a.repo.SaveArenas(ctx, rows)
}

func recordFromRow(r db.ArenaRow) arena.Record {
	rec := arena.Record{Name: r.Name, Disabled: r.Disabled}
	if r.First != nil || r.Second != nil {
		rec.Bounds = &arena.BoundsRecord{
			First:  pointFromRow(r.First),
			Second: pointFromRow(r.Second),
		}
	}
	return rec
}

func rowFromRecord(rec arena.Record) db.ArenaRow {
	row := db.ArenaRow{Name: rec.Name, Disabled: rec.Disabled}
	if rec.Bounds != nil {
		row.First = rowFromPoint(rec.Bounds.First)
		row.Second = rowFromPoint(rec.Bounds.Second)
	}
	return row
}

func pointFromRow(p *db.PointRow) *arena.Point {
	if p == nil {
		return nil
	}
	return &arena.Point{X: p.X, Y: p.Y, Z: p.Z, Heading: uint16(p.Heading)}
}

func rowFromPoint(p *arena.Point) *db.PointRow {
	if p == nil {
		return nil
	}
	return &db.PointRow{X: p.X, Y: p.Y, Z: p.Z, Heading: int32(p.Heading)}
}
