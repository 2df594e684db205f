package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "operation failed"
	testErr := errors.New("internal database error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// 未初始化视为开发环境
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, time.Minute, cfg.Server.WriteWindow)
	assert.Len(t, cfg.Seed.Categories, 10)
	assert.Equal(t, "Food", cfg.Seed.Categories[0])
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer func() { GlobalConfig = nil }()
	t.Setenv("EXPENSES_DATABASE_DRIVER", "sqlite")
	t.Setenv("EXPENSES_SERVER_TIMEZONE", "UTC")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)

	loc, err := cfg.Server.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadConfig_ExternalFile(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "database:\n  driver: postgres\n  dbname: ledger\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "ledger", cfg.Database.DBName)
	assert.Equal(t, "debug", cfg.Log.Level)
	// 未覆盖的键保留内置默认值
	assert.Equal(t, "127.0.0.1", cfg.Database.Host)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Timezone: "Mars/Olympus", WriteLimit: 5},
		Database: DatabaseConfig{Driver: "oracle", Charset: "utf8mb4; DROP TABLE x"},
		Seed:     SeedConfig{DemoStart: "yesterday"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
	assert.Contains(t, err.Error(), "Mars/Olympus")
	assert.Contains(t, err.Error(), "write_window")
	assert.Contains(t, err.Error(), "demo_start")
	assert.Contains(t, err.Error(), "database.charset")

	ok := &Config{Database: DatabaseConfig{Driver: "mysql", Charset: "utf8mb4"}}
	assert.NoError(t, ok.Validate())
}
