package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golddranks/pencil/internal/pkg/pkgconfig"
	"github.com/golddranks/pencil/internal/pkg/pkgrouter"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg, err := pkgconfig.NewViper("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	a := &App{ctx: ctx, cancel: cancel, config: cfg}
	a.initLibraries()
	a.initHTTPServer()
	a.initModules()
	a.initClosers()

	return a
}

func serve(a *App, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	a.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestAppDefaults(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, ":8080", a.httpServer.Addr)
	assert.Equal(t, "10s", a.httpServer.ReadHeaderTimeout.String())
	assert.Contains(t, a.closerFn, closerHTTPServer)
	assert.Contains(t, a.closerFn, closerConfig)
}

func TestAppServesNotesWithPoweredByHeader(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, http.MethodPost, "/notes", `{"title":"hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "pencil", rec.Header().Get(headerPoweredBy))
	assert.NotEmpty(t, rec.Header().Get(pkgrouter.HeaderCorrelationID))
}

func TestAppNotesModuleDisabled(t *testing.T) {
	t.Setenv("PENCIL_MODULES_NOTES_ENABLED", "false")
	a := newTestApp(t)

	rec := serve(a, http.MethodGet, "/notes", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAppMaintenanceMode(t *testing.T) {
	t.Setenv("PENCIL_SERVER_MAINTENANCE", "true")
	a := newTestApp(t)

	rec := serve(a, http.MethodGet, "/notes", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, maintenanceRetryAfter, rec.Header().Get(headerRetry))
	assert.Contains(t, rec.Body.String(), "service is under maintenance")
	assert.Equal(t, "pencil", rec.Header().Get(headerPoweredBy))

	rec = serve(a, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAppCORSPreflight(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/notes", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	a.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAppStopClosesResources(t *testing.T) {
	a := newTestApp(t)

	a.Stop(context.Background())
	assert.Error(t, a.ctx.Err())
}

func TestAppStartStop(t *testing.T) {
	t.Setenv("PENCIL_SERVER_ADDRESS_HTTP", "127.0.0.1:0")
	a := newTestApp(t)

	done := a.Start()
	a.Stop(context.Background())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("start channel not closed after stop")
	}
}

func TestAppStartFailureStops(t *testing.T) {
	t.Setenv("PENCIL_SERVER_ADDRESS_HTTP", "127.0.0.1:-1")
	a := newTestApp(t)

	select {
	case <-a.Start():
	case <-time.After(2 * time.Second):
		t.Fatal("start channel not closed after listen failure")
	}

	a.Stop(context.Background())
}
