package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "sparelab-epc", cfg.App.ServiceName)
	assert.Equal(t, "JC", cfg.JobCard.IDPrefix)
	assert.False(t, cfg.JobCard.StrictTransitions())
	assert.False(t, cfg.JobCard.StrictParts())
	assert.Equal(t, AnnotationStoreMemory, cfg.Annotations.Store)
	assert.Equal(t, "uploads", cfg.Storage.UploadsDir)
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JOBCARD_TRANSITION_POLICY", "strict")
	t.Setenv("JOBCARD_PART_POLICY", "STRICT")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://epc.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.JobCard.StrictTransitions())
	assert.True(t, cfg.JobCard.StrictParts())
	assert.Equal(t, []string{"http://localhost:3000", "https://epc.example.com"}, cfg.App.AllowedOrigins())
}

func TestLoadRejectsUnknownPolicies(t *testing.T) {
	cases := map[string]string{
		"JOBCARD_TRANSITION_POLICY": "linear",
		"JOBCARD_PART_POLICY":       "drop",
		"ANNOTATION_STORE":          "redis",
		"PORT":                      "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
