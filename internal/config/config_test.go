package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, o := range envOverrides {
		t.Setenv(o.env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Groq.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("BaseURL = %q, want groq default", cfg.Groq.BaseURL)
	}
	if cfg.Groq.Model != "llama-3.1-8b-instant" {
		t.Errorf("Model = %q, want llama-3.1-8b-instant", cfg.Groq.Model)
	}
	if cfg.Groq.APIKey != "" {
		t.Errorf("APIKey = %q, want empty when env is unset", cfg.Groq.APIKey)
	}
	if cfg.Report.Path != "profile.txt" {
		t.Errorf("Report.Path = %q, want profile.txt", cfg.Report.Path)
	}
	if cfg.Planner.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", cfg.Planner.Timezone)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("MOMENTUM_GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("MOMENTUM_REPORT_PATH", "/tmp/report.txt")
	t.Setenv("MOMENTUM_TIMEZONE", "Europe/Berlin")
	t.Setenv("MOMENTUM_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Groq.APIKey != "gsk-test" {
		t.Errorf("APIKey = %q, want gsk-test", cfg.Groq.APIKey)
	}
	if cfg.Groq.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Model = %q, want override", cfg.Groq.Model)
	}
	if cfg.Report.Path != "/tmp/report.txt" {
		t.Errorf("Report.Path = %q, want override", cfg.Report.Path)
	}
	if cfg.Planner.Timezone != "Europe/Berlin" {
		t.Errorf("Timezone = %q, want override", cfg.Planner.Timezone)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_EmptyEnvKeepsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("MOMENTUM_GROQ_MODEL", "")

	cfg := Load()
	if cfg.Groq.Model != "llama-3.1-8b-instant" {
		t.Errorf("Model = %q, empty env var should keep the default", cfg.Groq.Model)
	}
}
