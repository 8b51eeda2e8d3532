package fx

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/WanderingWalnut/HomeRun/config"
	"github.com/WanderingWalnut/HomeRun/internal/contracts"
	"github.com/WanderingWalnut/HomeRun/internal/domain/identity"
	"github.com/WanderingWalnut/HomeRun/internal/logger"
	"github.com/WanderingWalnut/HomeRun/internal/middleware"
	"github.com/WanderingWalnut/HomeRun/internal/routes"
)

// ServerModule provides the HTTP server setup
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	verifier identity.Verifier,
	publicRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, contracts.MessageResponse{Message: "HomeRun API is running!"})
	})

	public := router.Group("/api")
	public.Use(middleware.RateLimit(publicRateLimiter))
	{
		public.POST("/plaid/exchange", handler.ExchangeToken)
		public.POST("/plaid/sandbox/token", handler.CreateSandboxToken)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(verifier))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/progress", handler.GetProgress)
		private.GET("/progress/snapshot", handler.GetProgressSnapshot)
		private.GET("/accounts/balances", handler.GetBalances)
		private.GET("/transactions", handler.GetTransactions)
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			return nil
		},
	})
}
