package post

const postColumns = `id, board_id, title, content, attachment, youtube_url, thumbnail_url, created_at`

const (
	SelectPostsByBoard = `
		SELECT ` + postColumns + `
		FROM posts
		WHERE board_id = $1
		ORDER BY created_at DESC
		LIMIT 50 OFFSET ( ($2 - 1) * 50 )
	`
	SelectPostByID = `
		SELECT ` + postColumns + `
		FROM posts
		WHERE id = $1
	`
	SelectRecentPosts = `
		SELECT p.id, p.title, b.slug, b.name, p.created_at
		FROM posts p
		JOIN boards b ON p.board_id = b.id
		WHERE b.slug = ANY($1)
		ORDER BY p.created_at DESC
		LIMIT $2
	`
	SelectLatestByBoardSlug = `
		SELECT ` + qualifiedPostColumns + `
		FROM posts p
		JOIN boards b ON p.board_id = b.id
		WHERE b.slug = $1
		ORDER BY p.created_at DESC
		LIMIT 1
	`
	InsertPost = `
		INSERT INTO posts (board_id, title, content, attachment, youtube_url, thumbnail_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + postColumns + `
	`
	UpdatePostByID = `
		UPDATE posts
		SET title = $1, content = $2, attachment = $3, youtube_url = $4, thumbnail_url = $5
		WHERE id = $6
		RETURNING ` + postColumns + `
	`
	DeletePostByID = `DELETE FROM posts WHERE id = $1`
)

const qualifiedPostColumns = `p.id, p.board_id, p.title, p.content, p.attachment, p.youtube_url, p.thumbnail_url, p.created_at`
