package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golddranks/pencil/internal/pkg/pkglog"
)

type countingGenerator struct {
	value string
	calls int
}

func (g *countingGenerator) Generate() string {
	g.calls++
	return g.value
}

func TestMiddlewareCorrelationID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		value     string
		wantCID   string
		wantCalls int
	}{
		{name: "keeps incoming correlation id", header: HeaderCorrelationID, value: "header-cid", wantCID: "header-cid"},
		{name: "accepts request id", header: HeaderRequestID, value: "req-cid", wantCID: "req-cid"},
		{name: "generates when missing", wantCID: "generated", wantCalls: 1},
		{name: "replaces control characters", header: HeaderCorrelationID, value: "bad\x01cid", wantCID: "generated", wantCalls: 1},
		{name: "truncates long ids", header: HeaderCorrelationID, value: strings.Repeat("x", 300), wantCID: strings.Repeat("x", maxCIDLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &countingGenerator{value: "generated"}

			var ctxCID string
			h := middlewareCorrelationID(gen)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxCID = pkglog.GetCorrelationID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCID, rec.Header().Get(HeaderCorrelationID))
			assert.Equal(t, tt.wantCID, ctxCID)
			assert.Equal(t, tt.wantCalls, gen.calls)
		})
	}
}
