package router

import (
	"github.com/cosmelog/cosme-review-api/internal/application"
	"github.com/cosmelog/cosme-review-api/internal/container"
	"github.com/cosmelog/cosme-review-api/internal/infrastructure/sqlite"
	handlers "github.com/cosmelog/cosme-review-api/internal/interface/http"
	"github.com/cosmelog/cosme-review-api/internal/router/modules"
)

func buildUserHandler() *handlers.UserHandler {
	repo := sqlite.NewUserRepository(container.GetDB())
	cfg := container.GetConfig()
	var pub application.EmailPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	svc := application.NewUserService(
		repo,
		container.GetJWT(),
		container.GetLogger(),
		pub,
		cfg.MailSendEnabled,
	)
	return handlers.NewUserHandler(svc, container.GetLogger())
}

func buildProductHandler() *handlers.ProductHandler {
	repo := sqlite.NewProductRepository(container.GetDB(), container.GetLogger())
	cfg := container.GetConfig()
	svc := application.NewProductService(
		repo,
		container.GetRedis(),
		container.GetLogger(),
		container.GetES(),
		cfg.ESProductsIndex,
		container.GetGCS(),
		cfg.GCSBucket,
	)
	return handlers.NewProductHandler(svc, container.GetLogger())
}

func buildReviewHandler() *handlers.ReviewHandler {
	repo := sqlite.NewReviewRepository(container.GetDB())
	svc := application.NewReviewService(repo, container.GetLogger())
	return handlers.NewReviewHandler(svc, container.GetLogger())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(modules.NewUserModule(buildUserHandler(), container.GetJWT()))
	r.Add(modules.NewProductModule(buildProductHandler(), container.GetJWT()))
	r.Add(modules.NewReviewModule(buildReviewHandler(), container.GetJWT()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
