package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/application/services"
	"realty-office-api/internal/domain/page"
	"realty-office-api/internal/infrastructure/jwt"
	"realty-office-api/internal/interface/api/rest/middleware"
)

type PageController struct {
	pageService ports.PageService
	logger      *zap.Logger
}

func NewPageController(
	r *gin.Engine,
	pageService ports.PageService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *PageController {
	pc := &PageController{
		pageService: pageService,
		logger:      logger,
	}

	r.GET(RoutePages, pc.GetPagesHandler)
	r.GET(RoutePage, pc.GetPageHandler)
	r.PUT(RoutePage, middleware.AuthMiddleware(jwtService), pc.UpdatePageHandler)

	return pc
}

func pageResponse(p *page.Page) gin.H {
	return gin.H{
		"slug":       p.Slug,
		"title":      p.Title,
		"content":    p.Content,
		"updated_at": p.UpdatedAt,
	}
}

func (pc *PageController) GetPagesHandler(c *gin.Context) {
	pages, err := pc.pageService.FindPages(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get pages"},
		)
		pc.logger.Error("FindPages() error", zap.Error(err))
		return
	}

	out := make([]gin.H, 0, len(pages))
	for _, p := range pages {
		out = append(out, pageResponse(p))
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (pc *PageController) GetPageHandler(c *gin.Context) {
	slug := c.Param("slug")

	p, err := pc.pageService.FindPageBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get page"},
		)
		pc.logger.Error("FindPageBySlug() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pageResponse(p)})
}

func (pc *PageController) UpdatePageHandler(c *gin.Context) {
	slug := c.Param("slug")

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	p, err := pc.pageService.SavePage(c.Request.Context(), &page.Page{
		Slug:    slug,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to save page"},
		)
		pc.logger.Error("SavePage() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pageResponse(p)})
}
