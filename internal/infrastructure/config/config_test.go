package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the tests touch; viper ignores empty values
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STOREFRONT_APP_NAME",
		"STOREFRONT_APP_ENV",
		"STOREFRONT_APP_PORT",
		"STOREFRONT_DATABASE_HOST",
		"STOREFRONT_DATABASE_PORT",
		"STOREFRONT_DATABASE_USER",
		"STOREFRONT_DATABASE_PASSWORD",
		"STOREFRONT_DATABASE_DBNAME",
		"STOREFRONT_DATABASE_SSLMODE",
		"STOREFRONT_DATABASE_MAX_OPEN_CONNS",
		"STOREFRONT_DATABASE_MAX_IDLE_CONNS",
		"STOREFRONT_REPORT_TIMEZONE",
		"STOREFRONT_REPORT_CACHE_ENABLED",
		"STOREFRONT_REPORT_CACHE_TTL",
		"STOREFRONT_SCHEDULER_ENABLED",
		"STOREFRONT_SCHEDULER_WARM_SCHEDULE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "storefront-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "storefront", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)

		assert.Equal(t, "UTC", cfg.Report.Timezone)
		assert.False(t, cfg.Report.CacheEnabled)
		assert.Equal(t, 5*time.Minute, cfg.Report.CacheTTL)
		assert.False(t, cfg.Scheduler.Enabled)
		assert.Equal(t, "0 */15 * * * *", cfg.Scheduler.WarmSchedule)
	})

	t.Run("loads values from environment variables with STOREFRONT prefix", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_APP_NAME", "test-app")
		t.Setenv("STOREFRONT_APP_PORT", "9000")
		t.Setenv("STOREFRONT_DATABASE_HOST", "testdb.local")
		t.Setenv("STOREFRONT_DATABASE_PORT", "5433")
		t.Setenv("STOREFRONT_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("STOREFRONT_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("STOREFRONT_REPORT_TIMEZONE", "Asia/Riyadh")
		t.Setenv("STOREFRONT_REPORT_CACHE_ENABLED", "true")
		t.Setenv("STOREFRONT_REPORT_CACHE_TTL", "90s")
		t.Setenv("STOREFRONT_SCHEDULER_ENABLED", "true")
		t.Setenv("STOREFRONT_SCHEDULER_WARM_SCHEDULE", "@hourly")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, "Asia/Riyadh", cfg.Report.Timezone)
		assert.True(t, cfg.Report.CacheEnabled)
		assert.Equal(t, 90*time.Second, cfg.Report.CacheTTL)
		assert.True(t, cfg.Scheduler.Enabled)
		assert.Equal(t, "@hourly", cfg.Scheduler.WarmSchedule)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("STOREFRONT_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})

	t.Run("rejects unknown time zone", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_REPORT_TIMEZONE", "Mars/Olympus_Mons")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "report.timezone")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_APP_ENV", "production")
		t.Setenv("STOREFRONT_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_APP_ENV", "production")
		t.Setenv("STOREFRONT_DATABASE_PASSWORD", "secure-password")
		t.Setenv("STOREFRONT_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STOREFRONT_APP_ENV", "production")
		t.Setenv("STOREFRONT_DATABASE_PASSWORD", "secure-password")
		t.Setenv("STOREFRONT_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestReportConfig_Location(t *testing.T) {
	r := ReportConfig{Timezone: "Europe/Berlin"}
	assert.Equal(t, "Europe/Berlin", r.Location().String())

	r.Timezone = "nowhere"
	assert.Equal(t, time.UTC, r.Location())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})
}
