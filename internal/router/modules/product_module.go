package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosmelog/cosme-review-api/internal/container"
	handlers "github.com/cosmelog/cosme-review-api/internal/interface/http"
	"github.com/cosmelog/cosme-review-api/internal/interface/middleware"
	"github.com/cosmelog/cosme-review-api/pkg/helpers"
)

// ProductModule wires product HTTP handlers into routes
// Public: GET /api/products, GET /api/products/search, GET /api/products/:id
// Protected: POST /api/products, POST /api/products/:id/image

type ProductModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.TokenManager
}

func NewProductModule(h *handlers.ProductHandler, jwt *helpers.TokenManager) *ProductModule {
	return &ProductModule{Handler: h, JWT: jwt}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/products", listLimiter, m.Handler.List)
	rg.GET("/products/search", searchLimiter, m.Handler.Search)
	rg.GET("/products/:id", listLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/products", m.Handler.Create)
		auth.POST("/products/:id/image", m.Handler.UploadImage)
	}
}
