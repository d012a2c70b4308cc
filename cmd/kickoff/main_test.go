package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-kickoff/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kickoff.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "gameplay:\n  lives: 4\n")

	tests := []struct {
		name       string
		difficulty string
		wantLives  int
		wantErr    bool
	}{
		{"file values", "", 4, false},
		{"normal keeps file", "normal", 4, false},
		{"hard preset", "hard", 2, false},
		{"easy preset", "EASY", 5, false},
		{"unknown preset", "nightmare", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(path, tt.difficulty)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg.Gameplay.Lives != tt.wantLives {
				t.Errorf("Lives = %d, want %d", cfg.Gameplay.Lives, tt.wantLives)
			}
		})
	}
}

func TestLoadConfigPresetMustStayValid(t *testing.T) {
	// Hard shrinks max_length to 27, below min_length.
	path := writeConfig(t, "paddle:\n  min_length: 30\n  max_length: 36\n")

	if _, err := loadConfig(path, "normal"); err != nil {
		t.Fatalf("normal preset: %v", err)
	}
	_, err := loadConfig(path, "hard")
	if err == nil {
		t.Fatal("hard preset should leave an invalid paddle config")
	}
	if !strings.Contains(err.Error(), "paddle.max_length") {
		t.Errorf("error %q does not mention paddle.max_length", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kickoff.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello", "n", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	if _, _, err := newLogger(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Error("unknown level should be an error")
	}
}

func TestConfigCommand(t *testing.T) {
	flagConfig = writeConfig(t, "ball:\n  gravity: 0.5\n")
	flagDifficulty = ""
	flagDefaults = false
	t.Cleanup(func() { flagConfig = "" })

	var out bytes.Buffer
	configCmd.SetOut(&out)
	if err := runConfig(configCmd, nil); err != nil {
		t.Fatal(err)
	}

	var got config.KickoffConfig
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	if got.Ball.Gravity != 0.5 {
		t.Errorf("Gravity = %v, want 0.5", got.Ball.Gravity)
	}
	if got.Ball.Diameter != 100 {
		t.Errorf("Diameter = %v, want default 100", got.Ball.Diameter)
	}
}
