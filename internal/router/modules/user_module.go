package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosmelog/cosme-review-api/internal/container"
	handlers "github.com/cosmelog/cosme-review-api/internal/interface/http"
	"github.com/cosmelog/cosme-review-api/internal/interface/middleware"
	"github.com/cosmelog/cosme-review-api/pkg/helpers"
)

// UserModule wires user HTTP handlers and auth middleware into routes
// Public: POST /api/users/register, POST /api/users/login
// Protected: GET /api/users

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.TokenManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.TokenManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Registration and login get tight per-IP limits since both touch bcrypt
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users/register", registerLimiter, m.Handler.Register)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/users", m.Handler.List)
	}
}
