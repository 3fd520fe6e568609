package conf

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"TASKAI_API_URL", "TASKAI_LOG_LEVEL", "TASKAI_LOG_FILE", "TASKAI_LOG_MAX_SIZE_MB"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 10, cfg.LogMaxSizeMB)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TASKAI_API_URL", "http://tasks.internal:9000")
	t.Setenv("TASKAI_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://tasks.internal:9000", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}
