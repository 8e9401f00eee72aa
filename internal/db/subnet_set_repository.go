package db

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/subnetcheck/subnetcheck/internal/domain"
)

type SubnetSetRepository struct {
	pool *pgxpool.Pool
}

func NewSubnetSetRepository(pool *pgxpool.Pool) *SubnetSetRepository {
	return &SubnetSetRepository{pool: pool}
}

const listSetsQuery = `
SELECT id, name, description, cidrs, created_at, updated_at
FROM subnet_sets
ORDER BY name`

func (r *SubnetSetRepository) List(ctx context.Context) ([]domain.SubnetSet, error) {
	rows, err := r.pool.Query(ctx, listSetsQuery)
	if err != nil {
		return nil, fmt.Errorf("list subnet sets: %w", err)
	}
	defer rows.Close()

	var out []domain.SubnetSet
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, set)
	}

	return out, rows.Err()
}

const findSetQuery = `
SELECT id, name, description, cidrs, created_at, updated_at
FROM subnet_sets
WHERE name = $1`

func (r *SubnetSetRepository) FindByName(ctx context.Context, name string) (domain.SubnetSet, error) {
	set, err := scanSet(r.pool.QueryRow(ctx, findSetQuery, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SubnetSet{}, domain.ErrNotFound
		}
		return domain.SubnetSet{}, err
	}

	return set, nil
}

const createSetQuery = `
INSERT INTO subnet_sets (name, description, cidrs)
VALUES ($1, $2, $3)
RETURNING id, name, description, cidrs, created_at, updated_at`

func (r *SubnetSetRepository) Create(ctx context.Context, record domain.CreateSetRecord) (domain.SubnetSet, error) {
	set, err := scanSet(r.pool.QueryRow(ctx, createSetQuery, record.Name, record.Description, record.CIDRs))
	if err != nil {
		if isUniqueNameViolation(err) {
			return domain.SubnetSet{}, domain.ErrConflict
		}
		return domain.SubnetSet{}, fmt.Errorf("create subnet set: %w", err)
	}

	return set, nil
}

const deleteSetQuery = `DELETE FROM subnet_sets WHERE name = $1`

func (r *SubnetSetRepository) Delete(ctx context.Context, name string) (bool, error) {
	tag, err := r.pool.Exec(ctx, deleteSetQuery, name)
	if err != nil {
		return false, fmt.Errorf("delete subnet set: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanSet(row pgx.Row) (domain.SubnetSet, error) {
	var (
		set       domain.SubnetSet
		cidrs     []netip.Prefix
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&set.ID, &set.Name, &set.Description, &cidrs, &createdAt, &updatedAt); err != nil {
		return domain.SubnetSet{}, err
	}

	set.CIDRs = cidrs
	set.CreatedAt = createdAt.Time
	set.UpdatedAt = updatedAt.Time
	return set, nil
}

func isUniqueNameViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == "unique_set_name"
}
