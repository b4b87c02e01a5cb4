package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points ENV_FILE at a missing file so a developer .env never leaks in.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("AUTH_ENABLED", "")
	t.Setenv("DB_DRIVER", "")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBDriver != DBDriverPostgres {
		t.Fatalf("expected postgres driver by default, got %q", cfg.DBDriver)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 30*time.Second {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.AuthEnabled {
		t.Fatalf("expected auth disabled in dev by default")
	}
	if !cfg.DBAutoMigrate {
		t.Fatalf("expected auto-migrate in dev by default")
	}
	if cfg.MailEnabled() {
		t.Fatalf("expected mail disabled without RESEND_API_KEY")
	}
	if cfg.LogLevel.String() != "info" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_ProdRequiresAuthSecret(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when auth defaults on in prod without a secret")
	}

	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.AuthEnabled || cfg.DBAutoMigrate {
		t.Fatalf("unexpected prod defaults: auth=%v migrate=%v", cfg.AuthEnabled, cfg.DBAutoMigrate)
	}
}

func TestLoad_DBDriver(t *testing.T) {
	isolate(t)

	t.Run("sqlite alias", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("DB_URL", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBDriver != DBDriverSQLite || cfg.DBURL == "" {
			t.Fatalf("unexpected sqlite config: %q %q", cfg.DBDriver, cfg.DBURL)
		}
	})

	t.Run("memory needs no url", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "memory")
		t.Setenv("DB_URL", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBURL != "" {
			t.Fatalf("expected empty DB_URL for memory, got %q", cfg.DBURL)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unsupported DB_DRIVER")
		}
	})

	t.Run("pool sizes", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "")
		t.Setenv("DB_MAX_OPEN_CONNS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for DB_MAX_OPEN_CONNS=0")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	isolate(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN from OTLP headers: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	isolate(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	isolate(t)
	t.Setenv("APP_SERVICE_NAME", "tournament-ops-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "tournament-ops-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	isolate(t)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	isolate(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_MailConfig(t *testing.T) {
	isolate(t)
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("MAIL_TO", "desk@example.com, ops@example.com")
	t.Setenv("NOTIFY_WORKERS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.MailEnabled() || len(cfg.MailTo) != 2 || cfg.NotifyWorkers != 2 {
		t.Fatalf("unexpected mail config: %+v", cfg)
	}

	t.Setenv("NOTIFY_WORKERS", "zero")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid NOTIFY_WORKERS")
	}
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	isolate(t)

	t.Setenv("CACHE_ENABLED", "not-bool")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid CACHE_ENABLED")
	}

	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for CACHE_TTL_SECONDS=0")
	}

	t.Setenv("CACHE_ENABLED", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheEnabled {
		t.Fatalf("expected cache disabled")
	}
}

func TestLoad_ReadsDotEnvWithoutOverriding(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "test.env")
	content := "HTTP_ADDR=:9090\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("HTTP_ADDR", "")
	os.Unsetenv("HTTP_ADDR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected HTTP_ADDR from env file, got %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("expected process env to win over env file, got %s", cfg.LogLevel)
	}
}
