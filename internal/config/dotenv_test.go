package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDotEnvLine(t *testing.T) {
	cases := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"plain pair", "DB_PATH=./dev.db", "DB_PATH", "./dev.db", true},
		{"export prefix", "export PORT=9090", "PORT", "9090", true},
		{"double quotes", `SESSION_SECRET="s3cret"`, "SESSION_SECRET", "s3cret", true},
		{"single quotes", "ADMIN_EMAIL='a@b.co'", "ADMIN_EMAIL", "a@b.co", true},
		{"comment", "# DB_PATH=ignored", "", "", false},
		{"empty", "   ", "", "", false},
		{"no equals", "JUSTAKEY", "", "", false},
		{"empty key", "=value", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, v, ok := parseDotEnvLine(tc.line)
			if ok != tc.wantOK || k != tc.wantKey || v != tc.wantValue {
				t.Fatalf("parseDotEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tc.line, k, v, ok, tc.wantKey, tc.wantValue, tc.wantOK)
			}
		})
	}
}

func TestLoadDotEnvDoesNotOverwriteExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("COSTURELA_TEST_KEY=from_file\n"), 0o600); err != nil {
		t.Fatalf("write dotenv file: %v", err)
	}

	t.Setenv("COSTURELA_TEST_KEY", "from_env")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv returned error: %v", err)
	}
	if got := os.Getenv("COSTURELA_TEST_KEY"); got != "from_env" {
		t.Fatalf("existing env var overwritten: got %q", got)
	}
}

func TestLoadDotEnvMissingFileIsNotAnError(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected nil error for missing file, got %v", err)
	}
}
