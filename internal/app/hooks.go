package app

import (
	"log/slog"
	"net/http"

	"github.com/golddranks/pencil/internal/pkg/pkgconfig"
	"github.com/golddranks/pencil/internal/pkg/pkgerror"
	"github.com/golddranks/pencil/internal/pkg/pkgrouter"
)

const (
	headerPoweredBy = "X-Powered-By"
	headerRetry     = "Retry-After"

	maintenanceRetryAfter = "120"
)

func registerHooks(reg *pkgrouter.Registry, cfg pkgconfig.Config) {
	if cfg.GetBool("server.maintenance") {
		reg.BeforeRequest(maintenance)
	}

	reg.AfterRequest(func(_ *pkgrouter.Request, resp *pkgrouter.Response) {
		resp.Header.Set(headerPoweredBy, cfg.GetString("service.name"))
	})

	reg.TeardownRequest(logTerminalError)

	reg.HTTPErrorHandler(http.StatusServiceUnavailable, func(e *pkgerror.HTTPError) pkgrouter.Outcome {
		resp := pkgrouter.JSON(e.Code(), map[string]any{
			"message": e.Description(),
			"error":   map[string]any{"code": e.Code(), "name": e.Name()},
		})
		resp.Header.Set(headerRetry, maintenanceRetryAfter)
		return pkgrouter.OK(resp)
	})
}

// maintenance rejects every request except the health check.
func maintenance(r *pkgrouter.Request) (pkgrouter.Outcome, bool) {
	if r.URL.Path == "/health" {
		return pkgrouter.Outcome{}, false
	}

	return pkgrouter.Fail(pkgerror.ServiceUnavailable("service is under maintenance")), true
}

func logTerminalError(r *pkgrouter.Request, err pkgerror.PencilError) {
	if err == nil {
		return
	}

	slog.ErrorContext(r.Context(), "request ended with unresolved error",
		"method", r.Method,
		"route", r.Route(),
		"error", pkgerror.Text(err),
	)
}
