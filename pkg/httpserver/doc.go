// Package httpserver runs an http.Handler until a context is cancelled and
// then drains in-flight requests within a shutdown timeout.
//
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler provides liveness and readiness endpoints. Startup
// failures wrap ErrStart and failed drains wrap ErrShutdown.
package httpserver
