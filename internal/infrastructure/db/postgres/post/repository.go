package post

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"

	"realty-office-api/internal/domain/board"
	domain "realty-office-api/internal/domain/post"
	"realty-office-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		p                              domain.Post
		attachment, youtube, thumbnail sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.BoardID, &p.Title, &p.Content,
		&attachment, &youtube, &thumbnail, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Attachment = attachment.String
	p.YouTubeURL = youtube.String
	p.ThumbnailURL = thumbnail.String

	return &p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *Repository) FetchPostsByBoard(ctx context.Context, boardID board.ID, page int) (domain.Posts, error) {
	rows, err := r.db.Query(ctx, SelectPostsByBoard, boardID, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps domain.Posts
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ps, nil
}

func (r *Repository) FetchPostByID(ctx context.Context, id domain.ID) (*domain.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, SelectPostByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *Repository) FetchRecentPosts(ctx context.Context, slugs []string, limit int) ([]*domain.RecentPost, error) {
	rows, err := r.db.Query(ctx, SelectRecentPosts, slugs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps []*domain.RecentPost
	for rows.Next() {
		p := new(domain.RecentPost)
		if err = rows.Scan(&p.ID, &p.Title, &p.BoardSlug, &p.BoardName, &p.CreatedAt); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ps, nil
}

func (r *Repository) FetchLatestByBoardSlug(ctx context.Context, slug string) (*domain.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, SelectLatestByBoardSlug, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *Repository) CreatePost(ctx context.Context, req *domain.Post) (*domain.Post, error) {
	return scanPostOrNil(r.db.QueryRow(ctx, InsertPost,
		req.BoardID, req.Title, req.Content,
		nullString(req.Attachment), nullString(req.YouTubeURL), nullString(req.ThumbnailURL),
	))
}

func (r *Repository) UpdatePost(ctx context.Context, req *domain.Post) (*domain.Post, error) {
	return scanPostOrNil(r.db.QueryRow(ctx, UpdatePostByID,
		req.Title, req.Content,
		nullString(req.Attachment), nullString(req.YouTubeURL), nullString(req.ThumbnailURL),
		req.ID,
	))
}

func scanPostOrNil(row pgx.Row) (*domain.Post, error) {
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *Repository) DeletePost(ctx context.Context, id domain.ID) error {
	_, err := r.db.Exec(ctx, DeletePostByID, id)
	return err
}
