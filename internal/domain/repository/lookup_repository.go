package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/domain/model"
)

// LookupRepository serves the read-only status/priority reference data.
type LookupRepository interface {
	StatusByCode(ctx context.Context, code int) (*model.Status, error)
	PriorityByLevel(ctx context.Context, level int) (*model.Priority, error)
}

type pgLookupRepository struct {
	db *sql.DB
}

func NewPgLookupRepository(db *sql.DB) LookupRepository {
	return &pgLookupRepository{db: db}
}

func (r *pgLookupRepository) StatusByCode(ctx context.Context, code int) (*model.Status, error) {
	q := `SELECT code, title FROM statuses WHERE code = $1`
	status := &model.Status{}
	err := r.db.QueryRowContext(ctx, q, code).Scan(&status.Code, &status.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgLookupRepository.StatusByCode: %w", err)
	}
	return status, nil
}

func (r *pgLookupRepository) PriorityByLevel(ctx context.Context, level int) (*model.Priority, error) {
	q := `SELECT level, title FROM priorities WHERE level = $1`
	priority := &model.Priority{}
	err := r.db.QueryRowContext(ctx, q, level).Scan(&priority.Level, &priority.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgLookupRepository.PriorityByLevel: %w", err)
	}
	return priority, nil
}
