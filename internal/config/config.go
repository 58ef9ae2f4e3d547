// Package config holds runtime configuration for momentum. Values come from
// built-in defaults overridden by environment variables; a .env file loaded
// at process start feeds the same variables.
package config

import "os"

type Config struct {
	Groq    GroqConfig
	Report  ReportConfig
	Planner PlannerConfig
	Log     LogConfig
}

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type ReportConfig struct {
	Path string
}

type PlannerConfig struct {
	Timezone string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Groq: GroqConfig{
			BaseURL: "https://api.groq.com/openai/v1",
			Model:   "llama-3.1-8b-instant",
		},
		Report: ReportConfig{
			Path: "profile.txt",
		},
		Planner: PlannerConfig{
			Timezone: "America/New_York",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// envOverrides maps environment variables onto config fields. The credential
// is the bare GROQ_API_KEY so keys configured for other Groq tooling keep
// working; everything else carries the MOMENTUM_ prefix.
var envOverrides = []struct {
	env   string
	apply func(cfg *Config, v string)
}{
	{"GROQ_API_KEY", func(cfg *Config, v string) { cfg.Groq.APIKey = v }},
	{"MOMENTUM_GROQ_BASE_URL", func(cfg *Config, v string) { cfg.Groq.BaseURL = v }},
	{"MOMENTUM_GROQ_MODEL", func(cfg *Config, v string) { cfg.Groq.Model = v }},
	{"MOMENTUM_REPORT_PATH", func(cfg *Config, v string) { cfg.Report.Path = v }},
	{"MOMENTUM_TIMEZONE", func(cfg *Config, v string) { cfg.Planner.Timezone = v }},
	{"MOMENTUM_LOG_LEVEL", func(cfg *Config, v string) { cfg.Log.Level = v }},
}

// Load builds the configuration from defaults and environment overrides.
// A missing API key is not an error at this point: the quiz runs without
// one, and the suggest pipeline reports it when the Groq client is built.
func Load() Config {
	cfg := defaults()
	for _, o := range envOverrides {
		if v := os.Getenv(o.env); v != "" {
			o.apply(&cfg, v)
		}
	}
	return cfg
}
