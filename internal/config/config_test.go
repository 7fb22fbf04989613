package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/catalog")
	t.Setenv("DEFAULT_USER_ID", testUserID)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "warn", cfg.DBLogLevel)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 5, cfg.RecommendationsPerRun)
	assert.False(t, cfg.RequireValidToken)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "DATABASE_URL=postgres://file/catalog\n" +
		"DEFAULT_USER_ID=" + testUserID + "\n" +
		"PORT=9090\n" +
		"APP_ENV=production\n" +
		"READ_TIMEOUT=3s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/catalog", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9090\n"), 0o600))
	t.Setenv("PORT", "7000")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DatabaseURL:           "postgres://localhost/catalog",
			DefaultUserID:         testUserID,
			RecommendationsPerRun: 5,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing dsn", func(c *Config) { c.DatabaseURL = "" }, "DATABASE_URL"},
		{"bad default user", func(c *Config) { c.DefaultUserID = "user-1" }, "DEFAULT_USER_ID"},
		{"strict auth without secret", func(c *Config) { c.RequireValidToken = true }, "JWT_SECRET"},
		{"zero recommendations", func(c *Config) { c.RecommendationsPerRun = 0 }, "RECOMMENDATIONS_PER_RUN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultCaller(t *testing.T) {
	cfg := &Config{DefaultUserID: testUserID}
	id, err := cfg.DefaultCaller()
	require.NoError(t, err)
	assert.Equal(t, testUserID, id.String())
}
