package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, "vivacar@gmail.com", cfg.DefaultStaff.Email)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.PhotoStorageEnabled())
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server_port: "9090"
jwt_secret: from-file
log:
  level: debug
  format: json
cors_allowed_origins:
  - https://admin.vivacar.com.br
storage:
  bucket: fleet-photos
  max_photo_width: 800
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CHECK_EMAIL_DOMAIN", "true")
	t.Setenv("REDIS_TTL", "30s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 800, cfg.Storage.MaxPhotoWidth)
	assert.True(t, cfg.PhotoStorageEnabled())
	assert.True(t, cfg.CheckEmailDomain)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, []string{"https://admin.vivacar.com.br"}, cfg.CORSAllowedOrigins)
}

func TestLoad_CORSOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://app.vivacar.com.br , ,http://localhost:5173")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.vivacar.com.br", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("CHECK_EMAIL_DOMAIN", "talvez")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
