package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const (
	closerHTTPServer = "http server"
	closerConfig     = "config"
)

// Start runs the HTTP server on the goroutine manager and listens for
// termination signals. The returned channel closes once the application
// should stop: on SIGINT, SIGTERM or SIGHUP, when the server fails, or when
// Stop is called.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})

	a.goroutine.Go(a.ctx, closerHTTPServer, func(context.Context) error {
		slog.Info("http server listening", "address", a.httpServer.Addr)

		err := a.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		slog.Error("failed to listen and serve http server", "error", err)
		a.cancel()
		return err
	})

	ctx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		defer stop()

		<-ctx.Done()
		close(done)

		slog.Info("application received stop request", "because", context.Cause(ctx))
	}()

	return done
}

// Stop shuts the server down first, waits for every managed goroutine and
// then releases the remaining resources.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if err := a.closerFn[closerHTTPServer](ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", closerHTTPServer, "error", err)
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}
	slog.InfoContext(ctx, "all goroutines have finished")

	for name, closer := range a.closerFn {
		if name == closerHTTPServer {
			continue
		}
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application gracefully shutdown")
}
