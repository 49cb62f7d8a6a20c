package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CONTENT_BASE_URL", "")
	t.Setenv("DB_PATH", "")

	cfg := loadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.ContentBaseURL)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, "content.yaml", cfg.ContentFile)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CONTENT_BASE_URL", "https://api.example.com")
	t.Setenv("DB_PATH", "/tmp/site.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := loadConfig()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://api.example.com", cfg.ContentBaseURL)
	assert.Equal(t, "/tmp/site.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}
