package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"interview-scheduler/internal/middleware"
	schedulingHTTP "interview-scheduler/internal/scheduling/delivery/http"
	schedulingRepo "interview-scheduler/internal/scheduling/repository/postgre"
	schedulingUC "interview-scheduler/internal/scheduling/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.rateLimit)

	if err := srv.setupSchedulingDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}

// setupSchedulingDomain initializes the scheduling domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupSchedulingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := schedulingRepo.New(srv.postgresDB, srv.l)

	uc := schedulingUC.New(srv.l, repo, srv.calendar, srv.policy, srv.scheduling.HorizonDays, srv.calendarID)

	h := schedulingHTTP.New(srv.l, uc)

	schedulingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Scheduling domain registered")
	return nil
}
