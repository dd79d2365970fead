package pkgconfig

import (
	"io"
	"time"
)

// Config is the read-only view of configuration used by the application.
type Config interface {
	io.Closer

	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetDuration(key string) time.Duration
	GetBinary(key string) []byte
	GetArray(key string) []string
	GetMap(key string) map[string]string
}

// Defaults are applied before the config file and environment are read.
//
//nolint:gochecknoglobals // static defaults
var Defaults = map[string]any{
	"service.name":               "pencil",
	"log.level":                  "info",
	"server.address.http":        ":8080",
	"server.read_header_timeout": "10s",
	"server.max_error_hops":      8,
	"server.maintenance":         false,
	"cors.allowed_origins":       "*",
	"modules.notes.enabled":      true,
}
