package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/tinypal/internal/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tinypal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultChildID, cfg.Identity.ChildID)
	assert.Len(t, cfg.Identity.Responses, 3)
	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
api:
  base_url: http://localhost:9999/
  timeout: 5s
identity:
  child_id: ARYA
ui:
  screen: flash
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Equal(t, "ARYA", cfg.Identity.ChildID)
	assert.Equal(t, DefaultModuleID, cfg.Identity.ModuleID)
	assert.Equal(t, "flash", cfg.UI.Screen)
	assert.Equal(t, "http://localhost:9999", cfg.ImageBase())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "api:\n  base_url: http://file.example\n")
	t.Setenv("TINYPAL_BASE_URL", "http://env.example")
	t.Setenv("TINYPAL_CHILD_ID", "ENVCHILD")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example", cfg.API.BaseURL)
	assert.Equal(t, "ENVCHILD", cfg.Identity.ChildID)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"bad timeout":  "api:\n  timeout: soon\n",
		"zero timeout": "api:\n  timeout: 0s\n",
		"bad screen":   "ui:\n  screen: settings\n",
		"empty base":   "api:\n  base_url: \"  \"\n",
		"bad yaml":     "api: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.KindConfig), "got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindConfig))
}
