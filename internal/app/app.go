package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sa-pphire/qr-code-gen/config"
	"github.com/Sa-pphire/qr-code-gen/internal/controller/restapi"
	"github.com/Sa-pphire/qr-code-gen/internal/controller/web"
	"github.com/Sa-pphire/qr-code-gen/internal/infrastructure/processor"
	"github.com/Sa-pphire/qr-code-gen/internal/infrastructure/qr"
	"github.com/Sa-pphire/qr-code-gen/internal/usecase/landing"
	"github.com/Sa-pphire/qr-code-gen/pkg/httpserver"
	"github.com/Sa-pphire/qr-code-gen/pkg/logger"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
		httpserver.Views(web.NewViews()),
	)

	// Repository
	assets, err := newAssetRepo(ctx, cfg, httpServer.App)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newAssetRepo: %w", err))
	}

	pages, closePages, err := newLandingPageRepo(ctx, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newLandingPageRepo: %w", err))
	}
	defer func() {
		if err := closePages(); err != nil {
			l.Error(fmt.Errorf("app - Run - closePages: %w", err))
		}
	}()

	// Events
	events, err := newEventPublisher(ctx, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newEventPublisher: %w", err))
	}
	defer func() {
		if err := events.Close(); err != nil {
			l.Error(fmt.Errorf("app - Run - events.Close: %w", err))
		}
	}()

	// Use-Case
	opts := []landing.Option{landing.WithEvents(events)}
	if cfg.QR.ResizeEnabled {
		opts = append(opts, landing.WithResize(processor.New(), cfg.QR.ResizeWidth))
	}

	landingUseCase := landing.New(assets, pages, qr.New(cfg.QR.Size), l, opts...)

	// Routers
	web.NewRoutes(httpServer.App, landingUseCase, cfg.HTTP.PublicBaseURL, l)
	restapi.NewRouter(httpServer.App, cfg, landingUseCase, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
