// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/givingback/internal/app/resources"
	"github.com/dalemusser/givingback/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	// Backend reads share the client's ceiling; writes get a little more.
	timeouts.Configure(timeouts.Config{
		Read:  appCfg.APITimeout,
		Write: appCfg.APITimeout + appCfg.APITimeout/2,
	})
	logger.Info("timeouts configured", zap.Any("timeouts", timeouts.Current()))
	return nil
}
