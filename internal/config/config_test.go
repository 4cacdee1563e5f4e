package config

import (
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if cfg.App.Name != "ff-toolbox" {
		t.Errorf("expected app name 'ff-toolbox', got '%s'", cfg.App.Name)
	}
	if cfg.App.Environment != "development" {
		t.Errorf("expected environment 'development', got '%s'", cfg.App.Environment)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("expected database host 'localhost', got '%s'", cfg.Database.Host)
	}
	if cfg.Rankings.Distribution != "gaussian" {
		t.Errorf("expected gaussian distribution, got '%s'", cfg.Rankings.Distribution)
	}
	if len(cfg.Rankings.Sources) != 1 {
		t.Fatalf("expected 1 rankings source, got %d", len(cfg.Rankings.Sources))
	}
	if got := len(cfg.Rankings.Sources[0].Positions); got != 4 {
		t.Errorf("expected 4 positions, got %d", got)
	}
	if cfg.League.Teams != 12 {
		t.Errorf("expected 12 teams, got %d", cfg.League.Teams)
	}
	if cfg.League.Scoring.Rec != 1 {
		t.Errorf("expected full PPR scoring, got %v", cfg.League.Scoring.Rec)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load("testdata/nonexistent_config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	os.Setenv("TEST_DB_PASSWORD", "expanded_secret_value")
	defer os.Unsetenv("TEST_DB_PASSWORD")

	cfg, err := Load("testdata/expansion_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Database.Password != "expanded_secret_value" {
		t.Errorf("expected expanded password, got '%s'", cfg.Database.Password)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults("testdata/nonexistent_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.App.Environment != "development" {
		t.Errorf("expected default environment, got '%s'", cfg.App.Environment)
	}
	if cfg.Rankings.Distribution != "gaussian" {
		t.Errorf("expected default distribution, got '%s'", cfg.Rankings.Distribution)
	}
	if !cfg.Metrics.Enabled {
		t.Errorf("expected metrics enabled by default")
	}
}

func TestValidateValidConfig(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsBadDistribution(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.Rankings.Distribution = "gamma"
	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for gamma distribution")
	}
	if !strings.Contains(err.Error(), "gaussian") {
		t.Errorf("expected distribution message, got %v", err)
	}
}

func TestValidateRejectsBadPosition(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.Rankings.Sources[0].Positions = []string{"PUNTER"}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for unknown position")
	}
}

func TestValidateRejectsUnknownRosterSpot(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.League.RosterLimits["TAXI"] = 2
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for unknown roster spot")
	}
}

func TestValidateProductionRequiresSSL(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cfg.App.Environment = "production"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for disabled SSL in production")
	}
}

func TestOverlaySecrets(t *testing.T) {
	cfg, err := Load("testdata/valid_config.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	secrets := &SecretsOverlay{
		DatabasePassword: "from_secrets",
		SourceAPIKeys:    map[string]string{"projections": "key123"},
	}
	overlaySecretsOnConfig(cfg, secrets)
	if cfg.Database.Password != "from_secrets" {
		t.Errorf("expected overlaid database password")
	}
	if cfg.Rankings.Sources[0].APIKey != "key123" {
		t.Errorf("expected overlaid source API key")
	}
}

func TestParseSecretData(t *testing.T) {
	payload := `{"database_password":"pw","source_api_keys":{"projections":"k1"}}`

	fromString, err := parseSecretData(&secretsmanager.GetSecretValueOutput{
		SecretString: aws.String(payload),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fromString.DatabasePassword != "pw" || fromString.SourceAPIKeys["projections"] != "k1" {
		t.Errorf("unexpected parsed secrets: %+v", fromString)
	}

	fromBinary, err := parseSecretData(&secretsmanager.GetSecretValueOutput{
		SecretBinary: []byte(payload),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fromBinary.DatabasePassword != "pw" {
		t.Errorf("unexpected parsed secrets: %+v", fromBinary)
	}

	if _, err := parseSecretData(&secretsmanager.GetSecretValueOutput{}); err == nil {
		t.Fatal("expected error for empty secret payload")
	}

	if _, err := parseSecretData(&secretsmanager.GetSecretValueOutput{
		SecretString: aws.String("not json"),
	}); err == nil {
		t.Fatal("expected error for malformed secret JSON")
	}
}
