package config

import (
	"testing"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "CORS_ORIGINS", "SIMULATED_LATENCY", "SEED_SOURCE",
		"MYSQL_URL", "DATABASE_URL", "DB_USER", "DB_PASS", "DB_HOST", "DB_PORT", "DB_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.SimulatedLatency)
	assert.Equal(t, SeedSourceEmbedded, cfg.SeedSource)
	assert.Empty(t, cfg.MySQLDSN)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("SIMULATED_LATENCY", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.SimulatedLatency)
}

func TestLoad_UnknownSeedSource(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_SOURCE", "redis")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown SEED_SOURCE")
}

func TestLoad_MySQLFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_SOURCE", "mysql")
	t.Setenv("DB_USER", "hotel")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "dashboard")

	cfg, err := Load()
	require.NoError(t, err)

	parsed, err := gomysql.ParseDSN(cfg.MySQLDSN)
	require.NoError(t, err)
	assert.Equal(t, "hotel", parsed.User)
	assert.Equal(t, "secret", parsed.Passwd)
	assert.Equal(t, "db.internal:3306", parsed.Addr)
	assert.Equal(t, "dashboard", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, time.UTC, parsed.Loc)
}

func TestLoad_MySQLFromURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_SOURCE", "mysql")
	t.Setenv("MYSQL_URL", "mysql://u:p@example.com:3307/hotel?timeout=5s")

	cfg, err := Load()
	require.NoError(t, err)

	parsed, err := gomysql.ParseDSN(cfg.MySQLDSN)
	require.NoError(t, err)
	assert.Equal(t, "example.com:3307", parsed.Addr)
	assert.Equal(t, "hotel", parsed.DBName)
	assert.Equal(t, "u", parsed.User)
	assert.Equal(t, time.UTC, parsed.Loc)
}

func TestLoad_MySQLURLWithoutDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEED_SOURCE", "mysql")
	t.Setenv("MYSQL_URL", "mysql://u:p@example.com")

	_, err := Load()
	assert.ErrorContains(t, err, "missing database name")
}
