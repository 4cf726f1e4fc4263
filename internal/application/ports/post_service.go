package ports

import (
	"context"
	"mime/multipart"

	"realty-office-api/internal/domain/board"
	"realty-office-api/internal/domain/post"
)

type (
	// PostInput is the typed form of a board post submission. Previous
	// attachment state rides in ExistingAttachment so the reconciler has a
	// base to diff against.
	PostInput struct {
		BoardSlug          string
		Post               post.Post
		Files              []*multipart.FileHeader
		ExistingAttachment string
		DeletedFiles       []string
		YouTubeURL         string
	}
)

type PostService interface {
	FindBoards(ctx context.Context) (board.Boards, error)
	FindBoardBySlug(ctx context.Context, slug string) (*board.Board, error)
	FindPostsByBoard(ctx context.Context, slug string, page int) (post.Posts, error)
	FindPostByID(ctx context.Context, id post.ID) (*post.Post, error)
	FindRecentPosts(ctx context.Context, slugs []string, limit int) ([]*post.RecentPost, error)
	FindLatestByBoardSlug(ctx context.Context, slug string) (*post.Post, error)
	CreatePost(ctx context.Context, in PostInput) (*post.Post, error)
	UpdatePost(ctx context.Context, id post.ID, in PostInput) (*post.Post, error)
	DeletePost(ctx context.Context, id post.ID) error
	// ArchiveDownloadURL re-signs the stored object of an archive-kind post
	// so the download carries the original file name.
	ArchiveDownloadURL(ctx context.Context, id post.ID) (string, error)
}
