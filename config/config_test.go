package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("COMMAND_PREFIX", "")
	t.Setenv("GAME_COOLDOWN_SECONDS", "")
	t.Setenv("WORK_COOLDOWN_SECONDS", "")

	cfg, err := load()

	require.NoError(t, err)
	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, StorageFile, cfg.StorageBackend)
	assert.Equal(t, "gambling_data.json", cfg.DataFile)
	assert.Equal(t, 5*time.Second, cfg.GameCooldown)
	assert.Equal(t, 60*time.Second, cfg.WorkCooldown)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("COMMAND_PREFIX", "$")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432")
	t.Setenv("DATABASE_NAME", "economy")
	t.Setenv("GAME_COOLDOWN_SECONDS", "2")
	t.Setenv("WORK_COOLDOWN_SECONDS", "30")
	t.Setenv("NATS_SERVERS", "nats://localhost:4222")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := load()

	require.NoError(t, err)
	assert.Equal(t, "$", cfg.CommandPrefix)
	assert.Equal(t, StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, 2*time.Second, cfg.GameCooldown)
	assert.Equal(t, 30*time.Second, cfg.WorkCooldown)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSServers)
	assert.Equal(t, "postgres://u:p@localhost:5432/economy?sslmode=disable", cfg.GetDatabaseURL())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		match string
	}{
		{"missing token", map[string]string{"DISCORD_TOKEN": "", "ENVIRONMENT": "production"}, "DISCORD_TOKEN"},
		{"unknown backend", map[string]string{"DISCORD_TOKEN": "t", "STORAGE_BACKEND": "redis"}, "STORAGE_BACKEND"},
		{"postgres without url", map[string]string{"DISCORD_TOKEN": "t", "STORAGE_BACKEND": "postgres", "DATABASE_URL": ""}, "DATABASE_URL"},
		{"bad cooldown", map[string]string{"DISCORD_TOKEN": "t", "GAME_COOLDOWN_SECONDS": "soon"}, "GAME_COOLDOWN_SECONDS"},
		{"negative cooldown", map[string]string{"DISCORD_TOKEN": "t", "WORK_COOLDOWN_SECONDS": "-1"}, "WORK_COOLDOWN_SECONDS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", "development")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.match)
		})
	}
}

func TestLoad_TestEnvironmentSkipsRequired(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("DISCORD_TOKEN", "")

	cfg, err := load()

	require.NoError(t, err)
	assert.Empty(t, cfg.DiscordToken)
}

func TestGet_ReturnsTestInstance(t *testing.T) {
	cfg := NewTestConfig()
	SetForTesting(cfg)
	defer SetForTesting(nil)

	assert.Same(t, cfg, Get())
}
