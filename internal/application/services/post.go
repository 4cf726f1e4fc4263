package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/domain/attachment"
	boarddomain "realty-office-api/internal/domain/board"
	domain "realty-office-api/internal/domain/post"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrPostNotFound  = errors.New("post not found")
	ErrNotArchive    = errors.New("post has no archive attachment")
)

type PostService struct {
	log       *zap.Logger
	boardRepo boarddomain.Repository
	postRepo  domain.Repository
	pipeline  ports.UploadPipeline
	storage   ports.Storage
	mCounter  *prometheus.CounterVec
}

func NewPostService(
	logger *zap.Logger,
	boardRepo boarddomain.Repository,
	postRepo domain.Repository,
	pipeline ports.UploadPipeline,
	storage ports.Storage,
	mCounter *prometheus.CounterVec,
) ports.PostService {
	return &PostService{
		log:       logger,
		boardRepo: boardRepo,
		postRepo:  postRepo,
		pipeline:  pipeline,
		storage:   storage,
		mCounter:  mCounter,
	}
}

func (ps *PostService) FindBoards(ctx context.Context) (boarddomain.Boards, error) {
	return ps.boardRepo.FetchBoards(ctx)
}

func (ps *PostService) FindBoardBySlug(ctx context.Context, slug string) (*boarddomain.Board, error) {
	b, err := ps.boardRepo.FetchBoardBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBoardNotFound
	}
	return b, nil
}

func (ps *PostService) FindPostsByBoard(ctx context.Context, slug string, page int) (domain.Posts, error) {
	b, err := ps.FindBoardBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ps.postRepo.FetchPostsByBoard(ctx, b.ID, page)
}

func (ps *PostService) FindPostByID(ctx context.Context, id domain.ID) (*domain.Post, error) {
	p, err := ps.postRepo.FetchPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

func (ps *PostService) FindRecentPosts(ctx context.Context, slugs []string, limit int) ([]*domain.RecentPost, error) {
	return ps.postRepo.FetchRecentPosts(ctx, slugs, limit)
}

func (ps *PostService) FindLatestByBoardSlug(ctx context.Context, slug string) (*domain.Post, error) {
	return ps.postRepo.FetchLatestByBoardSlug(ctx, slug)
}

func (ps *PostService) CreatePost(ctx context.Context, in ports.PostInput) (*domain.Post, error) {
	b, err := ps.FindBoardBySlug(ctx, in.BoardSlug)
	if err != nil {
		return nil, err
	}

	res, err := ps.reconcile(ctx, b.Kind, in)
	if err != nil {
		return nil, err
	}

	p := in.Post
	p.BoardID = b.ID
	applyResult(&p, res)

	out, err := ps.postRepo.CreatePost(ctx, &p)
	if err != nil {
		return nil, err
	}
	ps.cleanup(ctx, res.RemoveKeys)

	ps.mCounter.WithLabelValues("posts_created_total").Inc()

	return out, nil
}

func (ps *PostService) UpdatePost(ctx context.Context, id domain.ID, in ports.PostInput) (*domain.Post, error) {
	prev, err := ps.FindPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b, err := ps.boardRepo.FetchBoardByID(ctx, prev.BoardID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBoardNotFound
	}

	if in.ExistingAttachment == "" {
		in.ExistingAttachment = prev.Attachment
	}

	res, err := ps.reconcile(ctx, b.Kind, in)
	if err != nil {
		return nil, err
	}

	p := in.Post
	p.ID = id
	p.BoardID = b.ID
	applyResult(&p, res)

	out, err := ps.postRepo.UpdatePost(ctx, &p)
	if err != nil {
		return nil, err
	}
	if out == nil {
		// the row vanished between the fetch and the update
		return nil, ErrPostNotFound
	}
	ps.cleanup(ctx, res.RemoveKeys)

	return out, nil
}

func (ps *PostService) DeletePost(ctx context.Context, id domain.ID) error {
	prev, err := ps.FindPostByID(ctx, id)
	if err != nil {
		return err
	}
	b, err := ps.boardRepo.FetchBoardByID(ctx, prev.BoardID)
	if err != nil {
		return err
	}

	if err = ps.postRepo.DeletePost(ctx, id); err != nil {
		return err
	}

	if b != nil {
		val := attachment.Parse(b.Kind, prev.Attachment)
		ps.cleanup(ctx, val.StorageKeys())
	}

	return nil
}

// ArchiveDownloadURL re-signs the stored object of an archive post so the
// browser saves it under the uploader's original file name.
func (ps *PostService) ArchiveDownloadURL(ctx context.Context, id domain.ID) (string, error) {
	p, err := ps.FindPostByID(ctx, id)
	if err != nil {
		return "", err
	}
	b, err := ps.boardRepo.FetchBoardByID(ctx, p.BoardID)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", ErrBoardNotFound
	}
	if b.Kind != attachment.KindArchive {
		return "", ErrNotArchive
	}

	val := attachment.Parse(attachment.KindArchive, p.Attachment)
	if val.Archive == nil {
		return "", ErrNotArchive
	}

	key := attachment.KeyFromURL(val.Archive.Path)
	return ps.storage.SignedURL(ctx, key, 0, val.Archive.Name)
}

func (ps *PostService) reconcile(ctx context.Context, kind attachment.Kind, in ports.PostInput) (attachment.Result, error) {
	refs, err := ps.pipeline.Process(ctx, in.Files)
	if err != nil {
		return attachment.Result{}, err
	}

	return attachment.Reconcile(attachment.Request{
		Kind:       kind,
		Previous:   in.ExistingAttachment,
		Deletions:  in.DeletedFiles,
		Uploads:    refs,
		YouTubeURL: in.YouTubeURL,
	}), nil
}

func applyResult(p *domain.Post, res attachment.Result) {
	p.Attachment = res.Column
	p.YouTubeURL = res.YouTubeURL
	p.ThumbnailURL = res.ThumbnailURL
}

func (ps *PostService) cleanup(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	removed := ps.storage.Remove(ctx, keys)
	if removed < len(keys) {
		ps.log.Warn("some stored objects were not removed",
			zap.Int("requested", len(keys)),
			zap.Int("removed", removed),
		)
	}
}
