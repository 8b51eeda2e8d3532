package fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/WanderingWalnut/HomeRun/config"
	"github.com/WanderingWalnut/HomeRun/internal/infrastructure"
	"github.com/WanderingWalnut/HomeRun/internal/plaid"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newSnapshotRepository,
		newPlaidClient,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newSnapshotRepository(db *gorm.DB) *infrastructure.SnapshotRepository {
	return &infrastructure.SnapshotRepository{DB: db}
}

func newPlaidClient(lc fx.Lifecycle, cfg *config.Config) (*plaid.Client, error) {
	client, err := plaid.NewClientFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			client.Close()
			return nil
		},
	})

	return client, nil
}
