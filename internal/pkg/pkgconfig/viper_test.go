package pkgconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestViper(t *testing.T, path string) *Viper {
	t.Helper()
	cfg, err := NewViper(path)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cfg.Close()) })
	return cfg
}

func TestViperConfigValues(t *testing.T) {
	cfg := newTestViper(t, writeConfigFile(t, "int: 42\nbool: true\nfloat: 3.14\nstring: hi\nbinary: aGVsbG8=\narray: a,b,c\nmap: k1:v1,k2:v2\n"))

	assert.EqualValues(t, 42, cfg.GetInt("int"))
	assert.True(t, cfg.GetBool("bool"))
	assert.InDelta(t, 3.14, cfg.GetFloat("float"), 1e-9)
	assert.Equal(t, "hi", cfg.GetString("string"))
	assert.Equal(t, "hello", string(cfg.GetBinary("binary")))
	assert.Equal(t, []string{"a", "b", "c"}, cfg.GetArray("array"))
	assert.Equal(t, map[string]string{"k1": "v1", "k2": "v2"}, cfg.GetMap("map"))
}

func TestViperGetBinaryInvalid(t *testing.T) {
	cfg := newTestViper(t, writeConfigFile(t, "binary: not-base64\n"))

	assert.Nil(t, cfg.GetBinary("binary"))
}

func TestViperDefaultsWithoutFile(t *testing.T) {
	cfg := newTestViper(t, "")

	assert.Equal(t, "pencil", cfg.GetString("service.name"))
	assert.EqualValues(t, 8, cfg.GetInt("server.max_error_hops"))
	assert.Equal(t, 10*time.Second, cfg.GetDuration("server.read_header_timeout"))
	assert.Equal(t, []string{"*"}, cfg.GetArray("cors.allowed_origins"))
	assert.True(t, cfg.GetBool("modules.notes.enabled"))
}

func TestViperFileOverridesDefaults(t *testing.T) {
	cfg := newTestViper(t, writeConfigFile(t, "log:\n  level: debug\nserver:\n  maintenance: true\n"))

	assert.Equal(t, "debug", cfg.GetString("log.level"))
	assert.True(t, cfg.GetBool("server.maintenance"))
	assert.Equal(t, ":8080", cfg.GetString("server.address.http"))
}

func TestViperEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: debug\n")
	t.Setenv("PENCIL_LOG_LEVEL", "error")

	assert.Equal(t, "error", newTestViper(t, path).GetString("log.level"))
}

func TestViperMissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestViperGetArrayDropsBlanks(t *testing.T) {
	cfg := newTestViper(t, writeConfigFile(t, "origins: \"https://a.test, ,https://b.test,\"\n"))

	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.GetArray("origins"))
}
