package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/modules/registration"
	"github.com/dmitrymomot/regform/modules/registration/views"
	"github.com/dmitrymomot/regform/pkg/clientip"
	"github.com/dmitrymomot/regform/pkg/config"
	"github.com/dmitrymomot/regform/pkg/environment"
	"github.com/dmitrymomot/regform/pkg/httpserver"
	"github.com/dmitrymomot/regform/pkg/logger"
	"github.com/dmitrymomot/regform/pkg/requestid"
	"github.com/dmitrymomot/regform/pkg/validator"
)

// AppConfig is the environment configuration of the web server.
type AppConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Service  string `env:"SERVICE_NAME" envDefault:"regform"`
	LogLevel string `env:"LOG_LEVEL"`
	// LogFormat overrides the format chosen for Env: "json" or "text".
	LogFormat string `env:"LOG_FORMAT"`
	BasePath string `env:"REGFORM_BASE_PATH" envDefault:"/"`
	// ProxyHeaders names the forwarding headers trusted for the client
	// address. Leave empty unless a reverse proxy sets them.
	ProxyHeaders []string `env:"REGFORM_PROXY_HEADERS" envSeparator:","`
	Server   httpserver.Config
}

// Validate implements config.Validator.
func (c AppConfig) Validate() error {
	if c.BasePath == "" || c.BasePath[0] != '/' {
		return fmt.Errorf("REGFORM_BASE_PATH must start with '/', got %q", c.BasePath)
	}
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", logger.FormatJSON, logger.FormatText, c.LogFormat)
	}
	if c.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	return nil
}

type ServeCmd struct {
	flags    *Flags
	addr     string
	envFiles []string
}

func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Start the registration web form",
		UsageText: "regform serve [options]",
		Description: `Serves the form on HTTP_ADDR (default :8080). Configuration is read from the
environment and .env files: APP_ENV, LOG_LEVEL, LOG_FORMAT, REGFORM_BASE_PATH
and the HTTP_* server settings. Set REGFORM_PROXY_HEADERS (e.g. X-Forwarded-For)
when running behind a reverse proxy.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address, overrides HTTP_ADDR",
				Destination: &cmd.addr,
			},
			&cli.StringSliceFlag{
				Name:        "env-file",
				Usage:       "load variables from these files instead of .env",
				Destination: &cmd.envFiles,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ServeCmd) run(ctx context.Context, c *cli.Command) error {
	rs, err := cmd.flags.FormRuleset()
	if err != nil {
		return err
	}

	var cfg AppConfig
	if err := config.Load(&cfg, config.WithEnvFiles(cmd.envFiles...)); err != nil {
		return err
	}
	if cmd.addr != "" {
		cfg.Server.Addr = cmd.addr
	}

	log := newLogger(cfg, os.Stdout)
	logger.SetAsDefault(log)

	log.InfoContext(ctx, "ruleset loaded",
		slog.Int("fields", rs.Len()),
		slog.String("source", rulesSource(cmd.flags.RulesFile)),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := newRouter(cfg, rs, log)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newLogger(cfg AppConfig, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(out),
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithAttr(slog.String("version", build())),
		logger.WithRedactedKeys(registration.SecretFields...),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	if cfg.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
			opts = append(opts, logger.WithLevel(lvl))
		}
	}
	return logger.New(opts...)
}

// newRouter wires middleware, health checks and the registration service
// mounted at cfg.BasePath.
func newRouter(cfg AppConfig, rs *validator.Ruleset, log *slog.Logger) (http.Handler, error) {
	if rs == nil {
		rs = registration.Ruleset()
	}
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})
	svc, err := registration.NewService(rs, views.New(cfg.BasePath), log, errorHandler)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(cfg.ProxyHeaders...))
	r.Use(httpserver.AccessLog(log))
	r.Use(environment.Middleware(environment.Parse(cfg.Env)))

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if rs.Len() == 0 {
			return validator.ErrEmptyRuleset
		}
		return nil
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Mount(cfg.BasePath, svc.Handle())
	return r, nil
}

func rulesSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
