package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"sqlitePath": "guardian.db",
			"postgres": map[string]any{
				"sslMode": "disable",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"voice": map[string]any{
			"apiKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_SQLITEPATH", want: "storage.sqlitePath"},
		{envKey: "STORAGE_POSTGRES_SSLMODE", want: "storage.postgres.sslMode"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "VOICE_APIKEY", want: "voice.apiKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  serviceName: guardian
  log:
    level: info
storage:
  driver: sqlite
  sqlitePath: from-yaml.db
auth:
  sessionTTL: 2h
motion:
  threshold: 38
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Chdir(dir)
	t.Setenv("STORAGE_SQLITEPATH", "from-env.db")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	if cfg.Env.ServiceName != "guardian" {
		t.Fatalf("serviceName = %q, want guardian", cfg.Env.ServiceName)
	}
	if cfg.Storage == nil || cfg.Storage.SQLitePath != "from-env.db" {
		t.Fatalf("storage.sqlitePath not overridden by env: %+v", cfg.Storage)
	}
	if cfg.Auth == nil || cfg.Auth.SessionTTL != 2*time.Hour {
		t.Fatalf("auth.sessionTTL = %+v, want 2h", cfg.Auth)
	}
	if cfg.Motion == nil || cfg.Motion.Threshold != 38 {
		t.Fatalf("motion.threshold = %+v, want 38", cfg.Motion)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("absent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Storage.Driver != "sqlite" || cfg.Storage.SQLitePath != defaultStorageFile {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Auth.SessionTTL != defaultSessionTTL {
		t.Fatalf("sessionTTL = %s, want %s", cfg.Auth.SessionTTL, defaultSessionTTL)
	}
}
