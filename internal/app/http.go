package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/delivery/http/v1"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := v1.NewRouter(
		globalLogger.With().Str("component", "http").Logger(),
		globalTaskService,
		cfg.CORS.AllowOrigins,
	)

	server := &http.Server{
		Addr:              net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler:           router,
		ReadHeaderTimeout: httpCfg.ReadHeaderTimeout,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Bool("cors_allow_all", cfg.CORS.AllowsAllOrigins()).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Blocks until SIGINT or SIGTERM, then runs the shutdown
	// operations within the configured timeout.
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		httpCfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				globalLogger.Info().
					Msg("shutting down http server")
				err := server.Shutdown(ctx)
				if err != nil {
					globalLogger.Error().
						Err(err).
						Msg("failed to shutdown http server")
					return err
				}
				globalLogger.Info().Msg("shut down http server")
				return nil
			},
		},
	)

	exitCode := <-wait
	if exitCode != 0 {
		globalLogger.Error().
			Int("exit_code", exitCode).
			Msg("http server exited uncleanly")
		os.Exit(exitCode)
	}
}
