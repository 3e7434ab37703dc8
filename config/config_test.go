package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, ModeRoster, cfg.Mode)
				assert.Equal(t, "public", cfg.StaticDir)
				assert.NotEmpty(t, cfg.DBUrl)
			},
		},
		{
			name: "settings mode with password",
			env: map[string]string{
				"REGISTRY_MODE":     "settings",
				"SETTINGS_PASSWORD": "hunter2",
				"PORT":              "3000",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ModeSettings, cfg.Mode)
				assert.Equal(t, "hunter2", cfg.SettingsPassword)
				assert.Equal(t, "3000", cfg.Port)
			},
		},
		{
			name:    "settings mode without password",
			env:     map[string]string{"REGISTRY_MODE": "settings"},
			wantErr: "SETTINGS_PASSWORD is required",
		},
		{
			name:    "unknown mode",
			env:     map[string]string{"REGISTRY_MODE": "bulk"},
			wantErr: "invalid REGISTRY_MODE",
		},
		{
			name: "cors origins split on comma",
			env:  map[string]string{"CORS_ALLOWED_ORIGINS": "http://a.test,http://b.test"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"PORT", "DATABASE_URL", "REGISTRY_MODE", "SETTINGS_PASSWORD", "STATIC_DIR", "CORS_ALLOWED_ORIGINS", "GO_ENV"} {
				t.Setenv(key, "")
			}
			// production skips the .env lookup so tests only see t.Setenv values
			t.Setenv("GO_ENV", "production")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
