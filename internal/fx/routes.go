package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
	"github.com/WanderingWalnut/HomeRun/internal/middleware"
	"github.com/WanderingWalnut/HomeRun/internal/plaid"
	"github.com/WanderingWalnut/HomeRun/internal/routes"
)

// RoutesModule provides handlers and rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newPublicRateLimiter,
	),
)

func newHandler(
	progressSvc *progress.Service,
	plaidClient *plaid.Client,
) *routes.Handler {
	return &routes.Handler{
		ProgressService: progressSvc,
		PlaidClient:     plaidClient,
	}
}

func newPublicRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
