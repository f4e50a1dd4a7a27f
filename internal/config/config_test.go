package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test in an empty directory so no restful-notes.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Nil(t, cfg.HTTP.BaseURL)
	assert.Empty(t, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "sqlite3", cfg.DB.Driver)
	assert.Equal(t, "file:restful-notes.db", cfg.DB.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	chdirTemp(t)
	t.Setenv("NOTES_HTTP_ADDR", ":9090")
	t.Setenv("NOTES_HTTP_BASE_URL", "https://notes.example.com/api")
	t.Setenv("NOTES_HTTP_CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("NOTES_HTTP_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("NOTES_DB_DRIVER", "postgres")
	t.Setenv("NOTES_DB_DSN", "postgres://localhost/notes")
	t.Setenv("NOTES_LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	require.NotNil(t, cfg.HTTP.BaseURL)
	assert.Equal(t, "https://notes.example.com/api", cfg.HTTP.BaseURL.String())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "postgres://localhost/notes", cfg.DB.DSN)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	dir := chdirTemp(t)
	yaml := "http:\n  addr: \":7070\"\n  cors_origins:\n    - https://c.example.com\ndb:\n  dsn: file:other.db\n"
	require.NoError(t, os.WriteFile(dir+"/restful-notes.yaml", []byte(yaml), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://c.example.com"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "file:other.db", cfg.DB.DSN)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "driver", key: "NOTES_DB_DRIVER", val: "oracle"},
		{name: "relative base url", key: "NOTES_HTTP_BASE_URL", val: "/api"},
		{name: "timeout", key: "NOTES_HTTP_SHUTDOWN_TIMEOUT", val: "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
