package rest

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/domain/watermark"
	"realty-office-api/internal/infrastructure/jwt"
	"realty-office-api/internal/interface/api/rest/middleware"
	"realty-office-api/internal/interface/api/rest/validator"
	"realty-office-api/internal/media"
)

var validAnchors = map[string]struct{}{
	string(media.AnchorCenter):      {},
	string(media.AnchorTopLeft):     {},
	string(media.AnchorTopRight):    {},
	string(media.AnchorBottomLeft):  {},
	string(media.AnchorBottomRight): {},
}

type WatermarkController struct {
	watermarkService ports.WatermarkService
	logger           *zap.Logger
}

func NewWatermarkController(
	r *gin.Engine,
	watermarkService ports.WatermarkService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *WatermarkController {
	wc := &WatermarkController{
		watermarkService: watermarkService,
		logger:           logger,
	}

	r.GET(RouteWatermarks, middleware.AuthMiddleware(jwtService), wc.GetWatermarksHandler)
	r.PUT(RouteWatermarks, middleware.AuthMiddleware(jwtService), wc.SaveWatermarkHandler)

	return wc
}

func (wc *WatermarkController) GetWatermarksHandler(c *gin.Context) {
	assets, err := wc.watermarkService.FindAssets(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get watermarks"},
		)
		wc.logger.Error("FindAssets() error", zap.Error(err))
		return
	}

	type row struct {
		ID            uint64  `json:"id"`
		Name          string  `json:"name"`
		Anchor        string  `json:"anchor"`
		WidthFraction float64 `json:"width_fraction"`
	}
	out := make([]row, 0, len(assets))
	for _, a := range assets {
		out = append(out, row{
			ID:            a.ID,
			Name:          a.Name,
			Anchor:        a.Anchor,
			WidthFraction: a.WidthFraction,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// SaveWatermarkHandler upserts one overlay: multipart with name, anchor,
// width_fraction and the overlay image itself.
func (wc *WatermarkController) SaveWatermarkHandler(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	anchor := c.PostForm("anchor")
	fracStr := c.PostForm("width_fraction")

	errs := make(map[string]string)
	if name == "" {
		errs["name"] = "name is required"
	}
	if _, ok := validAnchors[anchor]; !ok {
		errs["anchor"] = "unknown anchor"
	}
	frac, ferr := validator.FloatPtr(fracStr)
	if ferr != nil || frac == nil || *frac <= 0 || *frac > 1 {
		errs["width_fraction"] = "must be a number in (0, 1]"
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large or empty"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image"})
		return
	}

	out, err := wc.watermarkService.SaveAsset(c.Request.Context(), watermark.Asset{
		Name:          name,
		Image:         data,
		Anchor:        anchor,
		WidthFraction: *frac,
	})
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to save watermark"},
		)
		wc.logger.Error("SaveAsset() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   out.ID,
		"name": out.Name,
	})
}
