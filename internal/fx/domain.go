package fx

import (
	"go.uber.org/fx"

	"github.com/WanderingWalnut/HomeRun/config"
	"github.com/WanderingWalnut/HomeRun/internal/domain/identity"
	"github.com/WanderingWalnut/HomeRun/internal/domain/progress"
	"github.com/WanderingWalnut/HomeRun/internal/infrastructure"
	"github.com/WanderingWalnut/HomeRun/internal/logger"
	"github.com/WanderingWalnut/HomeRun/internal/plaid"
)

// DomainModule provides the domain services
var DomainModule = fx.Module("domain",
	fx.Provide(
		newVerifier,
		newProgressService,
	),
)

func newVerifier(cfg *config.Config) identity.Verifier {
	if !cfg.GoogleOAuth.Enabled {
		logger.Info().Msg("Google OAuth disabled (GOOGLE_OAUTH_ENABLED is not 'true'); private routes will reject all credentials")
		return identity.DisabledVerifier{}
	}

	verifier, err := identity.NewGoogleVerifier(cfg.GoogleOAuth)
	if err != nil {
		logger.Warn().Err(err).Msg("Google OAuth misconfigured; private routes will reject all credentials")
		return identity.DisabledVerifier{}
	}

	logger.Info().
		Int("client_id_length", len(cfg.GoogleOAuth.ClientID)).
		Msg("Google OAuth enabled")
	return verifier
}

func newProgressService(bank *plaid.Client, repo *infrastructure.SnapshotRepository, cfg *config.Config) *progress.Service {
	return progress.NewService(bank, repo, progress.Policy{
		DailyLimit:        cfg.Policy.DailyLimit,
		WeeklyTarget:      cfg.Policy.WeeklyTarget,
		DownPaymentTarget: cfg.Policy.DownPaymentTarget,
	})
}
