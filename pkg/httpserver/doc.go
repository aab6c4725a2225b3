// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then drains in-flight requests within the shutdown timeout.
// Ready is closed once the listener is bound, and Addr reports the bound
// address (useful with ":0").
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Start failures wrap ErrStart and shutdown failures wrap ErrShutdown.
package httpserver
