package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "sqlite://cv-intake.db", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "local", cfg.BlobBackend)
	assert.Equal(t, "none", cfg.LLMProvider)
	assert.Equal(t, 2*time.Minute, cfg.OCRTimeout)
	assert.Equal(t, 300, cfg.OCRDPI)
	assert.True(t, cfg.OCREnabled)
	assert.Equal(t, "resume_parse", cfg.ParseQueue)
	assert.Equal(t, 60, cfg.LLMRPM)
}

func TestFromEnvProviderKeys(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"LLM_PROVIDER":   "Groq",
		"GROQ_API_KEY":   "gsk_test",
		"OPENAI_API_KEY": "sk-ignored",
	}))
	require.NoError(t, err)
	assert.Equal(t, "groq", cfg.LLMProvider)
	assert.Equal(t, "gsk_test", cfg.LLMAPIKey)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLMModel)
}

func TestFromEnvValidation(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{"missing openai key", map[string]string{"LLM_PROVIDER": "openai"}, "LLMAPIKey"},
		{"unknown provider", map[string]string{"LLM_PROVIDER": "bard"}, "LLMProvider"},
		{"s3 without bucket", map[string]string{"BLOB_BACKEND": "s3"}, "S3Bucket"},
		{"bad port", map[string]string{"PORT": "http"}, "Port"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LogFormat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envFrom(tt.env))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Error(), tt.field)
		})
	}
}

func TestFromEnvParseErrors(t *testing.T) {
	_, err := FromEnv(envFrom(map[string]string{"OCR_TIMEOUT": "soon"}))
	assert.ErrorContains(t, err, "OCR_TIMEOUT")

	_, err = FromEnv(envFrom(map[string]string{"OCR_DPI": "high"}))
	assert.ErrorContains(t, err, "OCR_DPI")
}

func TestFromEnvRateLimit(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{"LLM_RPM": "0"}))
	require.NoError(t, err)
	assert.Zero(t, cfg.LLMRPM)

	_, err = FromEnv(envFrom(map[string]string{"LLM_RPM": "-5"}))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "LLMRPM")
}
