package post

import (
	"context"
	"time"

	"realty-office-api/internal/domain/board"
)

type (
	ID = uint64

	Post struct {
		ID      ID
		BoardID board.ID
		Title   string
		Content string

		Attachment   string // serialized per the owning board's kind
		YouTubeURL   string
		ThumbnailURL string

		CreatedAt time.Time
	}
	Posts []*Post

	// RecentPost is the home-page view of a post joined with its board.
	RecentPost struct {
		ID        ID
		Title     string
		BoardSlug string
		BoardName string
		CreatedAt time.Time
	}
)

type Repository interface {
	FetchPostsByBoard(ctx context.Context, boardID board.ID, page int) (Posts, error)
	FetchPostByID(ctx context.Context, id ID) (*Post, error)
	FetchRecentPosts(ctx context.Context, slugs []string, limit int) ([]*RecentPost, error)
	FetchLatestByBoardSlug(ctx context.Context, slug string) (*Post, error)
	CreatePost(ctx context.Context, p *Post) (*Post, error)
	UpdatePost(ctx context.Context, p *Post) (*Post, error)
	DeletePost(ctx context.Context, id ID) error
}
