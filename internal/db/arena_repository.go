package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PointRow is one arena corner.
type PointRow struct {
	X, Y, Z int32
	Heading int32
}

// ArenaRow represents a row from arenas.
type ArenaRow struct {
	Name     string
	Disabled bool
	First    *PointRow // nil = corner not set
	Second   *PointRow
}

// ArenaRepository stores the ordered arena collection.
type ArenaRepository struct {
	pool *pgxpool.Pool
}

// NewArenaRepository creates a new ArenaRepository.
func NewArenaRepository(pool *pgxpool.Pool) *ArenaRepository {
	return &ArenaRepository{pool: pool}
}

// LoadArenas returns all arenas in saved order.
func (r *ArenaRepository) LoadArenas(ctx context.Context) ([]ArenaRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, disabled,
		        first_x, first_y, first_z, first_h,
		        second_x, second_y, second_z, second_h
		 FROM arenas ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query arenas: %w", err)
	}
	defer rows.Close()

	var result []ArenaRow
	for rows.Next() {
		var (
			row        ArenaRow
			fx, fy, fz *int32
			fh         *int32
			sx, sy, sz *int32
			sh         *int32
		)
		if err := rows.Scan(&row.Name, &row.Disabled,
			&fx, &fy, &fz, &fh,
			&sx, &sy, &sz, &sh,
		); err != nil {
			return nil, fmt.Errorf("scan arenas: %w", err)
		}
		row.First = pointFromColumns(fx, fy, fz, fh)
		row.Second = pointFromColumns(sx, sy, sz, sh)
		result = append(result, row)
	}
	return result, rows.Err()
}

// SaveArenas replaces the table contents in one transaction.
func (r *ArenaRepository) SaveArenas(ctx context.Context, arenas []ArenaRow) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM arenas`); err != nil {
			return fmt.Errorf("clear arenas: %w", err)
		}

		batch := &pgx.Batch{}
		for i, a := range arenas {
			fx, fy, fz, fh := pointColumns(a.First)
			sx, sy, sz, sh := pointColumns(a.Second)
			batch.Queue(
				`INSERT INTO arenas (name, position, disabled,
				                     first_x, first_y, first_z, first_h,
				                     second_x, second_y, second_z, second_h)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
				a.Name, i, a.Disabled, fx, fy, fz, fh, sx, sy, sz, sh)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert arenas: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save arenas: %w", err)
	}
	return nil
}

func pointFromColumns(x, y, z, h *int32) *PointRow {
	if x == nil || y == nil || z == nil {
		return nil
	}
	p := &PointRow{X: *x, Y: *y, Z: *z}
	if h != nil {
		p.Heading = *h
	}
	return p
}

func pointColumns(p *PointRow) (x, y, z, h *int32) {
	if p == nil {
		return nil, nil, nil, nil
	}
	return &p.X, &p.Y, &p.Z, &p.Heading
}
