package post

import "time"

type (
	Post struct {
		ID      uint64 `json:"id"`
		BoardID uint64 `json:"board_id"`
		Title   string `json:"title"`
		Content string `json:"content"`

		Attachment   string `json:"attachment,omitempty"`
		YouTubeURL   string `json:"youtube_url,omitempty"`
		ThumbnailURL string `json:"thumbnail_url,omitempty"`

		CreatedAt time.Time `json:"created_at"`
	}
	Posts []Post

	ResponseData struct {
		Data Posts `json:"data"`
	}

	RecentPost struct {
		ID        uint64    `json:"id"`
		Title     string    `json:"title"`
		BoardSlug string    `json:"board_slug"`
		BoardName string    `json:"board_name"`
		CreatedAt time.Time `json:"created_at"`
	}

	Board struct {
		ID        uint64    `json:"id"`
		Slug      string    `json:"slug"`
		Name      string    `json:"name"`
		Kind      string    `json:"board_type"`
		CreatedAt time.Time `json:"created_at"`
	}
	Boards []Board
)
