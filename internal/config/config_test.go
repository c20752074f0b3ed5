// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
app:
  name: clubcancha
  environment: test
  port: 8080
  base_url: http://localhost:8080
database:
  driver: sqlite
  filename: data/test.db
payments:
  base_url: https://gateway.example
`

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("APP_SECRET_KEY", "secret")
	t.Setenv("APP_STAFF_KEY", "staff")
	t.Setenv("PAYMENTS_ACCESS_TOKEN", "token")

	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Port != 8080 || cfg.App.SecretKey != "secret" || cfg.App.StaffKey != "staff" {
		t.Errorf("app config: %+v", cfg.App)
	}
	if cfg.Payments.AccessToken != "token" {
		t.Errorf("payments token not read from environment")
	}

	// Defaults fill in what the file omits.
	if cfg.Payments.Timeout != 10 {
		t.Errorf("payments timeout default: %d", cfg.Payments.Timeout)
	}
	if cfg.Jobs.DuesCron != "* * * * *" || cfg.Jobs.JobRunRetentionDays != 90 {
		t.Errorf("jobs defaults: %+v", cfg.Jobs)
	}
}

func TestLoadRequiresSecretKey(t *testing.T) {
	t.Setenv("APP_SECRET_KEY", "")

	if _, err := Load(writeConfig(t, validYAML)); err == nil {
		t.Fatal("missing APP_SECRET_KEY accepted")
	}
}

func TestValidateRejectsBadCron(t *testing.T) {
	t.Setenv("APP_SECRET_KEY", "secret")

	yaml := validYAML + `
jobs:
  dues_cron: "not a cron"
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatal("invalid cron expression accepted")
	}
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_SECRET_KEY", "secret")

	yaml := `
app:
  name: clubcancha
  port: 8080
database:
  driver: postgres
  filename: data/test.db
payments:
  base_url: https://gateway.example
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatal("unsupported driver accepted")
	}
}
