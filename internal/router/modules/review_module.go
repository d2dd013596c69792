package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosmelog/cosme-review-api/internal/container"
	handlers "github.com/cosmelog/cosme-review-api/internal/interface/http"
	"github.com/cosmelog/cosme-review-api/internal/interface/middleware"
	"github.com/cosmelog/cosme-review-api/pkg/helpers"
)

// ReviewModule wires review HTTP handlers into routes
// Public: GET /api/reviews?productId=
// Protected: POST /api/reviews, DELETE /api/reviews/:id

type ReviewModule struct {
	Handler *handlers.ReviewHandler
	JWT     *helpers.TokenManager
}

func NewReviewModule(h *handlers.ReviewHandler, jwt *helpers.TokenManager) *ReviewModule {
	return &ReviewModule{Handler: h, JWT: jwt}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/reviews", listLimiter, m.Handler.ListByProduct)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/reviews", m.Handler.Create)
		auth.DELETE("/reviews/:id", m.Handler.Delete)
	}
}
