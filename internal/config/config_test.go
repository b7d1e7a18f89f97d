package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 9090
media:
  dir: "/srv/corner/media"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, "media", cfg.Media.Dir)
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "/srv/corner/media", cfg.Media.Dir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CORNER_SERVER_HOST", "10.1.2.3")
	t.Setenv("CORNER_SERVER_PORT", "7000")
	t.Setenv("CORNER_MEDIA_DIR", "/tmp/media")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "10.1.2.3:7000", cfg.Server.Addr())
	assert.Equal(t, "/tmp/media", cfg.Media.Dir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("CORNER_SERVER_PORT", "not-a-port")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("CORNER_SERVER_PORT", "99999")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: ["))
	assert.Error(t, err)
}
