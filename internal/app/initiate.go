package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/rs/cors"

	"github.com/golddranks/pencil/internal/pkg/pkgconfig"
	"github.com/golddranks/pencil/internal/pkg/pkglog"
	"github.com/golddranks/pencil/internal/pkg/pkgrouter"
	"github.com/golddranks/pencil/internal/pkg/pkgroutine"
	"github.com/golddranks/pencil/internal/pkg/pkguid"
)

func (a *App) initConfig(path string) {
	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	a.config = cfg
}

func (a *App) initLogging() {
	pkglog.InitLogging(pkglog.Options{
		Service: a.config.GetString("service.name"),
		Level:   a.config.GetString("log.level"),
	})
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(10)
	a.uuid = pkguid.NewUUID()

	node, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = node
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)
	a.router.Registry().SetMaxErrorHops(int(a.config.GetInt("server.max_error_hops")))
	registerHooks(a.router.Registry(), a.config)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{pkgrouter.HeaderCorrelationID, headerPoweredBy},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: a.config.GetDuration("server.read_header_timeout"),
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn[closerHTTPServer] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn[closerConfig] = func(context.Context) error {
		return a.config.Close()
	}
}
