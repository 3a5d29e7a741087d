package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:       "8460",
		JWTSecret:  "development-secret-key-for-testing!",
		DBPassword: "password",
		DBSSLMode:  "disable",
		Env:        "development",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid development config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Port = "" },
			wantErr: "PORT is required",
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: "JWT_SECRET is required",
		},
		{
			name: "default secret rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "your-secret-key-change-in-production"
			},
			wantErr: "JWT_SECRET must be changed from the default value in production",
		},
		{
			name: "short secret rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "short"
			},
			wantErr: "JWT_SECRET must be at least 32 characters in production",
		},
		{
			name: "weak db password rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "a-very-long-production-secret-key-123456"
				c.DBPassword = "password"
			},
			wantErr: "a strong DB_PASSWORD is required in production",
		},
		{
			name: "strong production config accepted",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "a-very-long-production-secret-key-123456"
				c.DBPassword = "s0mething-actually-strong"
				c.DBSSLMode = "require"
			},
		},
		{
			name: "short secret tolerated outside production",
			mutate: func(c *Config) {
				c.JWTSecret = "short"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
