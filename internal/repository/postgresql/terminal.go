package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/khanyisa-hr/workforce-backend-go/internal/domain/auth"
	"github.com/khanyisa-hr/workforce-backend-go/internal/pkg/database"
)

type terminalRepositoryImpl struct {
	db *database.DB
}

func NewTerminalRepository(db *database.DB) auth.TerminalRepository {
	return &terminalRepositoryImpl{db: db}
}

// Create implements auth.TerminalRepository.
func (r *terminalRepositoryImpl) Create(ctx context.Context, t auth.Terminal) (auth.Terminal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO terminals (id, branch_id, code, secret_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.ID, t.BranchID, t.Code, t.SecretHash).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return auth.Terminal{}, fmt.Errorf("failed to create terminal: %w", err)
	}

	return t, nil
}

// GetByCode implements auth.TerminalRepository.
func (r *terminalRepositoryImpl) GetByCode(ctx context.Context, code string) (auth.Terminal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_id, code, secret_hash, created_at, updated_at
		FROM terminals
		WHERE code = $1
	`

	var t auth.Terminal
	err := q.QueryRow(ctx, query, code).Scan(
		&t.ID, &t.BranchID, &t.Code, &t.SecretHash, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Terminal{}, auth.ErrTerminalNotFound
		}
		return auth.Terminal{}, fmt.Errorf("failed to get terminal: %w", err)
	}

	return t, nil
}
