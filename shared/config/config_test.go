package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPrivate = "pg:\n  host: localhost\n  port: 5432\n  user: user\n  password: password\n  dbname: imageboard\n"

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	public := "http:\n  addr: ':8080'\n  request_timeout: 5s\nmedia:\n  path: /var/media\n  thumbnail:\n    size: 128\n    jpeg_quality: 90\nmax_request_size: 1048576\n"
	dir := writeConfig(t, public, validPrivate)

	cfg := MustLoad(dir)

	assert.Equal(t, ":8080", cfg.Public.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.Public.HTTP.RequestTimeout)
	assert.Equal(t, "/var/media", cfg.Public.Media.Path)
	assert.Equal(t, 128, cfg.Public.Media.Thumbnail.Size)
	assert.Equal(t, 90, cfg.Public.Media.Thumbnail.JPEGQuality)
	assert.Equal(t, int64(1<<20), cfg.Public.MaxRequestSize)
	assert.Equal(t, "localhost", cfg.Private.Pg.Host)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
}

func TestMustLoad_Defaults(t *testing.T) {
	dir := writeConfig(t, "log:\n  level: debug\n", validPrivate)

	cfg := MustLoad(dir)

	defaults := Defaults()
	assert.Equal(t, defaults.HTTP.Addr, cfg.Public.HTTP.Addr)
	assert.Equal(t, defaults.Media.Thumbnail, cfg.Public.Media.Thumbnail)
	assert.Equal(t, int64(5<<20), cfg.Public.MaxRequestSize)
	assert.Equal(t, "debug", cfg.Public.Log.Level)
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// dbname is intentionally missing
	private := "pg:\n  host: localhost\n  port: 5432\n  user: user\n"
	dir := writeConfig(t, "", private)

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_InvalidThumbnailQuality(t *testing.T) {
	dir := writeConfig(t, "media:\n  thumbnail:\n    jpeg_quality: 101\n", validPrivate)

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_MissingFile(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}
