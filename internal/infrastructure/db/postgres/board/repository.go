package board

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"realty-office-api/internal/domain/attachment"
	domain "realty-office-api/internal/domain/board"
	"realty-office-api/internal/infrastructure/db/postgres"
)

const (
	SelectBoards = `
		SELECT id, slug, name, board_type, created_at
		FROM boards
		ORDER BY created_at DESC
	`
	SelectBoardBySlug = `
		SELECT id, slug, name, board_type, created_at
		FROM boards
		WHERE slug = $1
	`
	SelectBoardByID = `
		SELECT id, slug, name, board_type, created_at
		FROM boards
		WHERE id = $1
	`
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func scanBoard(row pgx.Row) (*domain.Board, error) {
	var (
		b         domain.Board
		boardType string
		createdAt time.Time
	)
	if err := row.Scan(&b.ID, &b.Slug, &b.Name, &boardType, &createdAt); err != nil {
		return nil, err
	}

	kind, err := attachment.ParseKind(boardType)
	if err != nil {
		return nil, err
	}
	b.Kind = kind
	b.CreatedAt = createdAt

	return &b, nil
}

func (r *Repository) FetchBoards(ctx context.Context) (domain.Boards, error) {
	rows, err := r.db.Query(ctx, SelectBoards)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bs domain.Boards
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}
		bs = append(bs, b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bs, nil
}

func (r *Repository) FetchBoardBySlug(ctx context.Context, slug string) (*domain.Board, error) {
	b, err := scanBoard(r.db.QueryRow(ctx, SelectBoardBySlug, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *Repository) FetchBoardByID(ctx context.Context, id domain.ID) (*domain.Board, error) {
	b, err := scanBoard(r.db.QueryRow(ctx, SelectBoardByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}
