package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/domain/settings"
	"realty-office-api/internal/infrastructure/jwt"
	"realty-office-api/internal/interface/api/rest/middleware"
)

type SettingsController struct {
	settingsService ports.SettingsService
	logger          *zap.Logger
}

func NewSettingsController(
	r *gin.Engine,
	settingsService ports.SettingsService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *SettingsController {
	sc := &SettingsController{
		settingsService: settingsService,
		logger:          logger,
	}

	r.GET(RouteSettings, sc.GetSettingsHandler)
	r.PUT(RouteSettings, middleware.AuthMiddleware(jwtService), sc.UpdateSettingsHandler)

	return sc
}

func (sc *SettingsController) GetSettingsHandler(c *gin.Context) {
	vals, err := sc.settingsService.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get settings"},
		)
		sc.logger.Error("FindAll() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vals})
}

func (sc *SettingsController) UpdateSettingsHandler(c *gin.Context) {
	var vals settings.Values
	if err := c.ShouldBindJSON(&vals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if len(vals) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no settings to update"})
		return
	}

	if err := sc.settingsService.Update(c.Request.Context(), vals); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update settings"},
		)
		sc.logger.Error("Update() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
