// Package http assembles the gin engine serving the staff API, probes,
// metrics and the swagger UI.
package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Porismic/JupiterBot/internal/common/middleware"
	"github.com/Porismic/JupiterBot/internal/common/validation"
	"github.com/Porismic/JupiterBot/internal/dispatch"
	auctionhttp "github.com/Porismic/JupiterBot/internal/features/auction/delivery/http"
	giveawayhttp "github.com/Porismic/JupiterBot/internal/features/giveaway/delivery/http"
	slotshttp "github.com/Porismic/JupiterBot/internal/features/slots/delivery/http"
	statshttp "github.com/Porismic/JupiterBot/internal/features/stats/delivery/http"
	"github.com/Porismic/JupiterBot/internal/handler"
	"github.com/Porismic/JupiterBot/internal/platform/metrics"
)

type Options struct {
	Dispatcher dispatch.Sender
	Store      handler.Pinger
	Origin     string
	StaffToken string
	// Purge window used when a purge request does not name one.
	Retention time.Duration
	Metrics   *metrics.Metrics
	Logger    zerolog.Logger
	Debug     bool
}

// NewRouter wires middleware and routes. Feature routes live under /api/v1
// behind the staff token.
func NewRouter(o Options) *gin.Engine {
	if !o.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	validation.Register()

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(o.Logger, "/health", "/live", "/ready", "/metrics"))
	router.Use(middleware.Recovery(o.Logger))
	router.Use(middleware.ErrorHandler(o.Logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{o.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "X-Request-ID", middleware.StaffTokenHeader}
	router.Use(cors.New(corsConfig))

	handler.NewHealthHandler(o.Store).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(o.Metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1", middleware.RequireStaff(o.StaffToken))
	giveawayhttp.NewGiveawayHandler(o.Dispatcher, o.Retention).RegisterRoutes(v1)
	slotshttp.NewSlotsHandler(o.Dispatcher).RegisterRoutes(v1)
	auctionhttp.NewAuctionHandler(o.Dispatcher).RegisterRoutes(v1)
	statshttp.NewStatsHandler(o.Dispatcher).RegisterRoutes(v1)

	return router
}
