package node

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/SystemBuilders/ListKey/internal/listservice"
	"github.com/SystemBuilders/ListKey/internal/routing"
)

const shutdownTimeout = 10 * time.Second

// Start begins the node's operation as a http server and blocks
// until ctx is cancelled or the server fails. Cancelling ctx shuts
// the server down gracefully.
func Start(ctx context.Context, ls listservice.ListService, cfg listservice.SimpleConfig, log zerolog.Logger) error {
	if err := checkValidPort(cfg.Port()); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return err
	}
	return Serve(ctx, ls, ln, log)
}

// Serve serves the list service on an existing listener until ctx is
// cancelled. The listener is closed when Serve returns.
func Serve(ctx context.Context, ls listservice.ListService, ln net.Listener, log zerolog.Logger) error {
	router := routing.SetupRouting(ls, mux.NewRouter())
	server := &http.Server{
		Handler: router,
	}

	// parallel names a task logger after each spawned task; the node
	// logs through zerolog, so that one stays silent.
	taskCtx := logger.WithLogger(ctx, zap.NewNop())

	err := parallel.Run(taskCtx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("server", parallel.Exit, func(ctx context.Context) error {
			log.Info().Str("addr", ln.Addr().String()).Msg("starting server")
			if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		spawn("shutdown", parallel.Exit, func(ctx context.Context) error {
			<-ctx.Done()
			return gracefulShutdown(server, ln, log)
		})
		return nil
	})
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// gracefulShutdown waits for in-flight requests, up to a deadline,
// and then closes the server.
func gracefulShutdown(server *http.Server, ln net.Listener, log zerolog.Logger) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Msg("shutting down")
	err := server.Shutdown(shutdownCtx)
	// Shutdown closes the listener too.
	if closeErr := ln.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
		err = multierr.Append(err, closeErr)
	}
	return err
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return err
	}
	if portInt < 0 || portInt > 65535 {
		return ErrInvalidPort
	}
	return nil
}
