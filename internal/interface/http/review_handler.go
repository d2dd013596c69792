package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cosmelog/cosme-review-api/internal/application"
	"github.com/cosmelog/cosme-review-api/pkg/response"
	"github.com/cosmelog/cosme-review-api/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type createReviewRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c, "invalid payload", validation.ToDetails(err))
		return
	}
	userID := c.GetInt64("userID")
	rv, err := h.Svc.Create(c.Request.Context(), req.ProductID, userID, req.Rating, req.Comment)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, "Review registered", gin.H{"review": rv})
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	raw := c.Query("productId")
	if raw == "" {
		response.Fail(c, http.StatusBadRequest, "Missing product ID", nil)
		return
	}
	productID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}
	reviews, err := h.Svc.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, "Reviews fetched", gin.H{"reviews": reviews})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid review ID", nil)
		return
	}
	userID := c.GetInt64("userID")
	if err := h.Svc.Erase(c.Request.Context(), id, userID); err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, "Review deleted", nil)
}
