package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	catalogHTTP "tutorial-api/internal/catalog/delivery/http"
	"tutorial-api/internal/middleware"
	"tutorial-api/pkg/validation"
)

func (srv HTTPServer) mapHandlers() error {
	if err := validation.Setup(catalogHTTP.ModelNameRule); err != nil {
		return err
	}

	mw := middleware.New(srv.l, srv.middlewareCfg, srv.metrics)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(
		gin.Recovery(),
		mw.RequestID(),
		mw.AccessLog(),
		mw.Metrics(),
		mw.RateLimit(),
	)

	srv.l.Infof(context.Background(), "Middlewares registered for %s (rate limit: %t, metrics: %t)",
		srv.environment, srv.middlewareCfg.RateLimitEnabled, srv.metrics != nil)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.swaggerEnabled {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}

	if srv.metrics != nil {
		srv.gin.GET(srv.metricsPath, gin.WrapH(srv.metrics.Handler()))
	}
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	srv.gin.GET("/", srv.root)

	if err := srv.setupItemDomain(ctx, srv.gin); err != nil {
		return err
	}
	if err := srv.setupCatalogDomain(ctx, srv.gin); err != nil {
		return err
	}
	if err := srv.setupUserDomain(ctx, srv.gin); err != nil {
		return err
	}

	return nil
}
