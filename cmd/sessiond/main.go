// Command sessiond serves the session endpoints over HTTP.
//
// It mints session cookies, reports the identifier a request carries and
// re-issues cookies for records presented by clients. All settings come from
// the environment (or a .env file):
//
//	SESSION_SALT=secret SESSION_APPLICATION_NAME=myapp sessiond
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/dfcsession/pkg/config"
	"github.com/dmitrymomot/dfcsession/pkg/cookie"
	"github.com/dmitrymomot/dfcsession/pkg/httpserver"
	"github.com/dmitrymomot/dfcsession/pkg/logger"
	"github.com/dmitrymomot/dfcsession/pkg/requestid"
	"github.com/dmitrymomot/dfcsession/pkg/session"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"sessiond"`

	Session session.Config
	Cookie  cookie.Config
	HTTP    httpserver.Config
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	client, err := session.NewFromConfig(cfg.Session,
		session.WithLogger(log),
		session.WithCookieManager(cookie.NewFromConfig(cfg.Cookie)),
	)
	if err != nil {
		log.Error("invalid session config", logger.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, newRouter(client, log)); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
