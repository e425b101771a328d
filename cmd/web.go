/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/bmicalc/bmi"
	"github.com/humaidq/bmicalc/routes"
	"github.com/humaidq/bmicalc/static"
	"github.com/humaidq/bmicalc/templates"
)

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags:   startFlags(),
	Action:  start,
}

// startFlags returns fresh flag instances; cli flags keep parsed state.
func startFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   "8080",
			Sources: cli.EnvVars("PORT"),
			Usage:   "the web server port",
		},
		&cli.StringFlag{
			Name:    "lang",
			Value:   string(bmi.Portuguese),
			Sources: cli.EnvVars("BMI_LANG"),
			Usage:   "page language (pt or en)",
		},
		&cli.DurationFlag{
			Name:    "progress-delay",
			Value:   200 * time.Millisecond,
			Sources: cli.EnvVars("BMI_PROGRESS_DELAY"),
			Usage:   "delay of each of the five progress steps (0 disables)",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret used to sign CSRF tokens (required in production)",
		},
		&cli.StringFlag{
			Name:    "env",
			Value:   "development",
			Sources: cli.EnvVars(runtimeEnvVar),
			Usage:   "runtime environment (development or production)",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (templates are read from disk)",
		},
	}
}

func start(ctx context.Context, cmd *cli.Command) error {
	cfg, err := webConfigFromCommand(cmd)
	if err != nil {
		return err
	}

	f, err := newWebApp(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", cfg.Port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     serverStdLogger,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("Starting web server", "port", cfg.Port, "lang", cfg.Lang, "production", cfg.Production)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	return nil
}

func newWebApp(cfg *webConfig) (*flamego.Flame, error) {
	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)
	f.Use(routes.SecurityHeaders())

	templateOpts := template.Options{}
	if cfg.Dev {
		templateOpts.Directory = "templates"
	} else {
		fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
		if err != nil {
			return nil, fmt.Errorf("failed to load templates: %w", err)
		}
		templateOpts.FileSystem = fs
	}

	f.Use(session.Sessioner(session.Options{
		Cookie: session.CookieOptions{
			Name:     "bmi_session",
			Secure:   cfg.Production,
			HTTPOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}))
	f.Use(csrf.Csrfer(csrf.Options{
		Secret: cfg.CSRFSecret,
	}))
	f.Use(template.Templater(templateOpts))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
		Prefix:     "static",
	}))

	f.Map(routes.NewCalculatorConfig(cfg.Lang, cfg.ProgressDelay))
	routes.RegisterMetrics()

	f.Get("/healthz", routes.Healthz)
	f.Get("/metrics", routes.Metrics)
	f.Post("/api/bmi", routes.APIAssess)

	f.Group("", func() {
		f.Get("/", routes.CalculatorForm)
		f.Post("/calculate", csrf.Validate, routes.Calculate)
		f.Post("/reset", csrf.Validate, routes.ResetForm)
	}, routes.CSRFInjector(), routes.FlashInjector(), routes.NoCacheHeaders())

	configureEmptyNotFoundHandler(f)

	return f, nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}
