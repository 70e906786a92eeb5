package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "local", cfg.ResumeSource)
	assert.Equal(t, "resume.pdf", cfg.ResumeKey)
	assert.Equal(t, "Your_Name_Resume.pdf", cfg.ResumeFilename)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Empty(t, cfg.AdminToken)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"APP_ENV":         "Production",
		"PORT":            "9000",
		"ADMIN_TOKEN":     "s3cret",
		"METRICS_ENABLED": "false",
		"RESUME_SOURCE":   "S3",
		"RESUME_BUCKET":   "cv-bucket",
		"WRITE_TIMEOUT":   "30s",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "s3cret", cfg.AdminToken)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "s3", cfg.ResumeSource)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"env":       {"APP_ENV": "staging"},
		"port":      {"PORT": "eighty"},
		"bucket":    {"RESUME_SOURCE": "gcs"},
		"source":    {"RESUME_SOURCE": "ftp"},
		"metrics":   {"METRICS_ENABLED": "maybe"},
		"durations": {"READ_TIMEOUT": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envOf(env))
			assert.Error(t, err)
		})
	}
}
