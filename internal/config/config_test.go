package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "https://localhost:7200/api", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.NotEmpty(t, cfg.State.Dir)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "api config override",
			envVars: map[string]string{
				"API_BASE_URL": "https://store.example.com/api",
				"API_TIMEOUT":  "30s",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "https://store.example.com/api", cfg.API.BaseURL)
				assert.Equal(t, 30*time.Second, cfg.API.Timeout)
			},
		},
		{
			name: "state dir override",
			envVars: map[string]string{
				"STATE_DIR": "/tmp/homecraft-test",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/homecraft-test", cfg.State.Dir)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
