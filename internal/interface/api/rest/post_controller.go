package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/application/services"
	postdomain "realty-office-api/internal/domain/post"
	"realty-office-api/internal/infrastructure/jwt"
	dto "realty-office-api/internal/interface/api/rest/dto/post"
	"realty-office-api/internal/interface/api/rest/middleware"
	"realty-office-api/internal/interface/api/rest/validator"
)

const defaultRecentLimit = 5

type PostController struct {
	postService ports.PostService
	logger      *zap.Logger
}

func NewPostController(
	r *gin.Engine,
	postService ports.PostService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *PostController {
	pc := &PostController{
		postService: postService,
		logger:      logger,
	}

	r.GET(RouteBoards, pc.GetBoardsHandler)
	r.GET(RouteBoard, pc.GetBoardHandler)
	r.GET(RouteBoardPosts, pc.GetBoardPostsHandler)
	r.GET(RouteBoardLatest, pc.GetBoardLatestHandler)
	r.GET(RouteRecentPosts, pc.GetRecentPostsHandler)
	r.GET(RoutePost, pc.GetPostHandler)
	r.GET(RoutePostFile, pc.GetPostFileHandler)
	r.POST(RouteBoardPosts, middleware.AuthMiddleware(jwtService), pc.CreatePostHandler)
	r.PUT(RoutePost, middleware.AuthMiddleware(jwtService), pc.UpdatePostHandler)
	r.DELETE(RoutePost, middleware.AuthMiddleware(jwtService), pc.DeletePostHandler)

	return pc
}

func (pc *PostController) GetBoardsHandler(c *gin.Context) {
	bs, err := pc.postService.FindBoards(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get boards"},
		)
		pc.logger.Error("FindBoards() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToBoardResponses(bs)})
}

func (pc *PostController) GetBoardHandler(c *gin.Context) {
	b, err := pc.postService.FindBoardBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get board"},
		)
		pc.logger.Error("FindBoardBySlug() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardResponse(*b))
}

func (pc *PostController) GetBoardPostsHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	posts, err := pc.postService.FindPostsByBoard(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		if errors.Is(err, services.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get posts"},
		)
		pc.logger.Error("FindPostsByBoard() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dto.ResponseData{
		Data: dto.ToResponses(posts),
	})
}

func (pc *PostController) GetBoardLatestHandler(c *gin.Context) {
	p, err := pc.postService.FindLatestByBoardSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get latest post"},
		)
		pc.logger.Error("FindLatestByBoardSlug() error", zap.Error(err))
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToResponse(*p))
}

func (pc *PostController) GetRecentPostsHandler(c *gin.Context) {
	slugs := strings.Split(c.DefaultQuery("boards", ""), ",")
	var clean []string
	for _, s := range slugs {
		if s = strings.TrimSpace(s); s != "" {
			clean = append(clean, s)
		}
	}

	limit := defaultRecentLimit
	if q := c.Query("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	posts, err := pc.postService.FindRecentPosts(c.Request.Context(), clean, limit)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get recent posts"},
		)
		pc.logger.Error("FindRecentPosts() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToRecentResponses(posts)})
}

func (pc *PostController) GetPostHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("post_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "post_id " + err.Error()},
		)
		return
	}

	p, err := pc.postService.FindPostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get post"},
		)
		pc.logger.Error("FindPostByID() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dto.ToResponse(*p))
}

// GetPostFileHandler redirects to a short-lived signed URL carrying the
// original file name of an archive attachment.
func (pc *PostController) GetPostFileHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("post_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "post_id " + err.Error()},
		)
		return
	}

	url, err := pc.postService.ArchiveDownloadURL(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound), errors.Is(err, services.ErrBoardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, services.ErrNotArchive):
			c.JSON(http.StatusNotFound, gin.H{"error": "post has no downloadable file"})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to sign download"},
			)
			pc.logger.Error("ArchiveDownloadURL() error", zap.Error(err))
		}
		return
	}

	c.Redirect(http.StatusFound, url)
}

func (pc *PostController) CreatePostHandler(c *gin.Context) {
	in, errs := pc.bindPostForm(c)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}
	in.BoardSlug = c.Param("slug")

	p, err := pc.postService.CreatePost(c.Request.Context(), *in)
	if err != nil {
		if errors.Is(err, services.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
			return
		}
		if errors.Is(err, services.ErrTooManyFiles) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a post"},
		)
		pc.logger.Error("CreatePost() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, dto.ToResponse(*p))
}

func (pc *PostController) UpdatePostHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("post_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "post_id " + err.Error()},
		)
		return
	}

	in, errs := pc.bindPostForm(c)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	p, err := pc.postService.UpdatePost(c.Request.Context(), id, *in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, services.ErrTooManyFiles):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to update a post"},
			)
			pc.logger.Error("UpdatePost() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToResponse(*p))
}

func (pc *PostController) DeletePostHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("post_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "post_id " + err.Error()},
		)
		return
	}

	if err = pc.postService.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete post"},
		)
		pc.logger.Error("DeletePost() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (pc *PostController) bindPostForm(c *gin.Context) (*ports.PostInput, map[string]string) {
	title := c.PostForm("title")
	if errs := validator.ValidatePostForm(title); errs != nil {
		return nil, errs
	}

	files, ferr := formFiles(c, "files")
	if ferr != "" {
		return nil, map[string]string{"files": ferr}
	}

	return &ports.PostInput{
		Post: postdomain.Post{
			Title:   strings.TrimSpace(title),
			Content: c.PostForm("content"),
		},
		Files:              files,
		ExistingAttachment: c.PostForm("existing_attachment"),
		DeletedFiles:       formStringList(c, "deleted_files"),
		YouTubeURL:         c.PostForm("youtube_url"),
	}, nil
}
