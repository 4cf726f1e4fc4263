package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/infrastructure/jwt"
	dto "realty-office-api/internal/interface/api/rest/dto/inquiry"
	"realty-office-api/internal/interface/api/rest/middleware"
	"realty-office-api/internal/interface/api/rest/validator"
)

type InquiryController struct {
	inquiryService ports.InquiryService
	logger         *zap.Logger
}

func NewInquiryController(
	r *gin.Engine,
	inquiryService ports.InquiryService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *InquiryController {
	ic := &InquiryController{
		inquiryService: inquiryService,
		logger:         logger,
	}

	r.POST(RouteInquiries, ic.CreateInquiryHandler)
	r.POST(RouteInquiryDetails, ic.CreateDetailHandler)
	r.GET(RouteInquiries, middleware.AuthMiddleware(jwtService), ic.GetInquiriesHandler)

	return ic
}

func (ic *InquiryController) CreateInquiryHandler(c *gin.Context) {
	var req dto.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateInquiry(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	out, err := ic.inquiryService.SubmitRequest(c.Request.Context(), dto.ToDomain(req))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to submit inquiry"},
		)
		ic.logger.Error("SubmitRequest() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, dto.ToResponse(*out))
}

func (ic *InquiryController) CreateDetailHandler(c *gin.Context) {
	var req dto.DetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if req.RequestID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": map[string]string{"request_id": "request_id is required"},
		})
		return
	}

	if err := ic.inquiryService.SubmitDetail(c.Request.Context(), dto.DetailToDomain(req)); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to submit details"},
		)
		ic.logger.Error("SubmitDetail() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (ic *InquiryController) GetInquiriesHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	rs, err := ic.inquiryService.FindRequests(c.Request.Context(), page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get inquiries"},
		)
		ic.logger.Error("FindRequests() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dto.ResponseData{
		Data: dto.ToResponses(rs),
	})
}
