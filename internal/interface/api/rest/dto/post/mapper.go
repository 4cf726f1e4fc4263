package post

import (
	boarddomain "realty-office-api/internal/domain/board"
	domain "realty-office-api/internal/domain/post"
)

func ToResponse(d domain.Post) Post {
	return Post{
		ID:           d.ID,
		BoardID:      d.BoardID,
		Title:        d.Title,
		Content:      d.Content,
		Attachment:   d.Attachment,
		YouTubeURL:   d.YouTubeURL,
		ThumbnailURL: d.ThumbnailURL,
		CreatedAt:    d.CreatedAt,
	}
}

func ToResponses(ds domain.Posts) Posts {
	ps := make(Posts, len(ds))
	for idx, d := range ds {
		ps[idx] = ToResponse(*d)
	}
	return ps
}

func ToRecentResponses(ds []*domain.RecentPost) []RecentPost {
	rs := make([]RecentPost, len(ds))
	for idx, d := range ds {
		rs[idx] = RecentPost{
			ID:        d.ID,
			Title:     d.Title,
			BoardSlug: d.BoardSlug,
			BoardName: d.BoardName,
			CreatedAt: d.CreatedAt,
		}
	}
	return rs
}

func ToBoardResponse(d boarddomain.Board) Board {
	return Board{
		ID:        d.ID,
		Slug:      d.Slug,
		Name:      d.Name,
		Kind:      d.Kind.String(),
		CreatedAt: d.CreatedAt,
	}
}

func ToBoardResponses(ds boarddomain.Boards) Boards {
	bs := make(Boards, len(ds))
	for idx, d := range ds {
		bs[idx] = ToBoardResponse(*d)
	}
	return bs
}
