package app

import (
	"context"
	"net/http"

	"github.com/golddranks/pencil/internal/pkg/pkgconfig"
	"github.com/golddranks/pencil/internal/pkg/pkgrouter"
	"github.com/golddranks/pencil/internal/pkg/pkgroutine"
	"github.com/golddranks/pencil/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	closerFn map[string]func(context.Context) error
}

// New wires the application from the config file at configPath. An empty
// path runs on defaults and PENCIL_* environment variables only.
func New(configPath string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig(configPath)
	app.initLogging()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
