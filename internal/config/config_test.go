package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/taskhive/taskhive/internal/config"
)

func TestLoad(t *testing.T) {
	v := viper.New()
	v.Set("host", "0.0.0.0")
	v.Set("port", "9000")
	v.Set("log_level", "debug")
	v.Set("data_dir", "/tmp/taskhive")
	v.Set("metrics_addr", ":9191")
	v.Set("max_concurrent", 25)
	v.Set("request_timeout", 15)

	cfg := config.Load(v)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/taskhive", cfg.DataDir)
	assert.Equal(t, ":9191", cfg.MetricsAddr)
	assert.Equal(t, 25, cfg.MaxConcurrent)
	assert.Equal(t, 15, cfg.RequestTimeout)
}

func TestLoad_ZeroValues(t *testing.T) {
	cfg := config.Load(viper.New())

	assert.Empty(t, cfg.Host)
	assert.Zero(t, cfg.MaxConcurrent)
}
