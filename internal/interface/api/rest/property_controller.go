package rest

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/application/services"
	"realty-office-api/internal/domain/property"
	"realty-office-api/internal/infrastructure/jwt"
	dto "realty-office-api/internal/interface/api/rest/dto/property"
	"realty-office-api/internal/interface/api/rest/middleware"
	"realty-office-api/internal/interface/api/rest/validator"
)

// 10MB per file, a gallery submission carries up to ten
const maxUploadSize = int64(10 << 20)

type PropertyController struct {
	propertyService ports.PropertyService
	logger          *zap.Logger
}

func NewPropertyController(
	r *gin.Engine,
	propertyService ports.PropertyService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *PropertyController {
	pc := &PropertyController{
		propertyService: propertyService,
		logger:          logger,
	}

	r.GET(RouteProperties, pc.GetPropertiesHandler)
	r.GET(RoutePropertyStats, middleware.AuthMiddleware(jwtService), pc.GetStatsHandler)
	r.GET(RouteProperty, pc.GetPropertyHandler)
	r.POST(RouteProperties, middleware.AuthMiddleware(jwtService), pc.CreatePropertyHandler)
	r.PUT(RouteProperty, middleware.AuthMiddleware(jwtService), pc.UpdatePropertyHandler)
	r.DELETE(RouteProperty, middleware.AuthMiddleware(jwtService), pc.DeletePropertyHandler)

	return pc
}

func (pc *PropertyController) GetPropertiesHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	ps, err := pc.propertyService.FindProperties(c.Request.Context(), c.Query("category"), page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get properties"},
		)
		pc.logger.Error("FindProperties() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dto.ResponseData{
		Data: dto.ToResponses(ps),
	})
}

func (pc *PropertyController) GetPropertyHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("property_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "property_id " + err.Error()},
		)
		return
	}

	p, err := pc.propertyService.FindPropertyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a property"},
		)
		pc.logger.Error("FindPropertyByID() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dto.ToResponse(*p))
}

func (pc *PropertyController) GetStatsHandler(c *gin.Context) {
	stats, err := pc.propertyService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get stats"},
		)
		pc.logger.Error("Stats() error", zap.Error(err))
		return
	}

	out := dto.Stats{Total: stats.Total}
	for _, cc := range stats.ByCategory {
		out.ByCategory = append(out.ByCategory, dto.CategoryCount{
			Category: cc.Category,
			Count:    cc.Count,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (pc *PropertyController) CreatePropertyHandler(c *gin.Context) {
	in, errs := pc.bindPropertyForm(c)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	p, err := pc.propertyService.CreateProperty(c.Request.Context(), *in)
	if err != nil {
		pc.writeUploadError(c, "failed to create a property", err)
		pc.logger.Error("CreateProperty() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, dto.ToResponse(*p))
}

func (pc *PropertyController) UpdatePropertyHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("property_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "property_id " + err.Error()},
		)
		return
	}

	in, errs := pc.bindPropertyForm(c)
	if errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}
	in.Property.ID = id

	p, err := pc.propertyService.UpdateProperty(c.Request.Context(), *in)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		pc.writeUploadError(c, "failed to update a property", err)
		pc.logger.Error("UpdateProperty() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dto.ToResponse(*p))
}

func (pc *PropertyController) DeletePropertyHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("property_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "property_id " + err.Error()},
		)
		return
	}

	if err = pc.propertyService.DeleteProperty(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete property"},
		)
		pc.logger.Error("DeleteProperty() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// bindPropertyForm maps one multipart submission onto the typed input. All
// numeric fields are optional; empty strings become nil pointers.
func (pc *PropertyController) bindPropertyForm(c *gin.Context) (*ports.PropertyInput, map[string]string) {
	category := c.PostForm("category")
	title := c.PostForm("title")

	if errs := validator.ValidatePropertyForm(category, title); errs != nil {
		return nil, errs
	}

	p := property.Property{
		Category: category,
		Title:    strings.TrimSpace(title),
		Price:    c.PostForm("price"),
		Address:  c.PostForm("address"),

		ApprovalDate:      c.PostForm("approval_date"),
		Purpose:           c.PostForm("purpose"),
		Direction:         c.PostForm("direction"),
		DirectionStandard: c.PostForm("direction_standard"),
		TransactionType:   c.PostForm("transaction_type"),
		PowerSupply:       c.PostForm("power_supply"),
		Hoist:             c.PostForm("hoist"),
		MoveInDate:        c.PostForm("move_in_date"),
		Description:       c.PostForm("description"),
		YouTubeURL:        c.PostForm("youtube_url"),
		Status:            c.PostForm("status"),
	}
	if p.Status == "" {
		p.Status = "판매중"
	}

	errs := make(map[string]string)
	var err error
	if p.Area, err = validator.FloatPtr(c.PostForm("area")); err != nil {
		errs["area"] = "must be a number"
	}
	if p.ExclusiveArea, err = validator.FloatPtr(c.PostForm("exclusive_area")); err != nil {
		errs["exclusive_area"] = "must be a number"
	}
	if p.CeilingHeight, err = validator.FloatPtr(c.PostForm("ceiling_height")); err != nil {
		errs["ceiling_height"] = "must be a number"
	}
	if p.TotalFloors, err = validator.IntPtr(c.PostForm("total_floors")); err != nil {
		errs["total_floors"] = "must be an integer"
	}
	if p.Floor, err = validator.IntPtr(c.PostForm("floor")); err != nil {
		errs["floor"] = "must be an integer"
	}
	if p.Parking, err = validator.IntPtr(c.PostForm("parking")); err != nil {
		errs["parking"] = "must be an integer"
	}
	if p.MaintenanceFee, err = validator.IntPtr(c.PostForm("maintenance_fee")); err != nil {
		errs["maintenance_fee"] = "must be an integer"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	files, ferr := formFiles(c, "images")
	if ferr != "" {
		return nil, map[string]string{"images": ferr}
	}

	return &ports.PropertyInput{
		Property:           p,
		Files:              files,
		ExistingImagePaths: c.PostForm("existing_image_paths"),
		DeletedImageURLs:   formStringList(c, "deleted_images"),
	}, nil
}

// writeUploadError distinguishes a client-side upload problem from a server
// fault.
func (pc *PropertyController) writeUploadError(c *gin.Context, msg string, err error) {
	if errors.Is(err, services.ErrTooManyFiles) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// formFiles pulls the named multipart file set and size-checks each part.
func formFiles(c *gin.Context, field string) ([]*multipart.FileHeader, string) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, ""
	}
	files := form.File[field]
	for _, fh := range files {
		if fh.Size <= 0 || fh.Size > maxUploadSize {
			return nil, "file too large or empty: " + fh.Filename
		}
	}
	return files, ""
}

// formStringList accepts either repeated form values or one JSON array.
func formStringList(c *gin.Context, field string) []string {
	vals := c.PostFormArray(field)
	if len(vals) == 1 && strings.HasPrefix(strings.TrimSpace(vals[0]), "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(vals[0]), &parsed); err == nil {
			return parsed
		}
	}
	return vals
}
