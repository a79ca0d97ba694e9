package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("DB_HOST", "db")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_USER", "recetario")
	os.Setenv("DB_PASSWORD", "secret")
	os.Setenv("DB_NAME", "recetario")
	os.Setenv("DB_SSL_MODE", "require")
	os.Setenv("S3_BUCKET_NAME", "test-bucket")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	defer func() {
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE", "S3_BUCKET_NAME", "REDIS_URL"} {
			os.Unsetenv(key)
		}
	}()

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "recetario", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.Equal(t, "recetario", cfg.DBName)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, "test-bucket", cfg.S3Bucket)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE", "S3_BUCKET_NAME", "REDIS_URL", "SERVER_PORT", "SERVER_HOST"} {
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "recetario", cfg.DBName)
	assert.Equal(t, "recetario-recipe-images", cfg.S3Bucket)
}

func TestGetSecretFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db_password")
	if err := os.WriteFile(path, []byte("from-file\n"), 0o600); err != nil {
		t.Fatalf("failed to write secret file: %v", err)
	}

	os.Unsetenv("DB_PASSWORD")
	os.Setenv("DB_PASSWORD_FILE", path)
	defer os.Unsetenv("DB_PASSWORD_FILE")

	assert.Equal(t, "from-file", getSecret("DB_PASSWORD", "fallback"))
}

func TestValidateConfigProduction(t *testing.T) {
	os.Setenv("ENV", "production")
	defer os.Unsetenv("ENV")

	cfg := &Config{
		ServerPort: "8080",
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "recetario",
		DBPassword: "postgres",
		DBName:     "recetario",
		DBSSLMode:  "disable",
	}

	err := ValidateConfig(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_SSL_MODE")
}
