package board

import (
	"context"
	"time"

	"realty-office-api/internal/domain/attachment"
)

type (
	ID = uint64

	// Board is one bulletin board; Kind decides how its posts' attachment
	// column is shaped.
	Board struct {
		ID        ID
		Slug      string
		Name      string
		Kind      attachment.Kind
		CreatedAt time.Time
	}
	Boards []*Board
)

type Repository interface {
	FetchBoards(ctx context.Context) (Boards, error)
	FetchBoardBySlug(ctx context.Context, slug string) (*Board, error)
	FetchBoardByID(ctx context.Context, id ID) (*Board, error)
}
