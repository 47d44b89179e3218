// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	adminstore "github.com/hbcybertech/clubhub/internal/app/store/admin"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// ClubHub seeds the singleton admin record here so its absence at
// request time is always an operational fault, never a race with first
// traffic.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	admin, err := adminstore.New(deps.ClubHubMongoDatabase).Seed(ctx)
	if err != nil {
		logger.Error("admin seed failed", zap.Error(err))
		return err
	}
	logger.Info("admin record ready", zap.Time("last_reset", admin.LastReset))
	return nil
}
