package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"Recipe-Publisher/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGetConfigDefaults(t *testing.T) {
	require.NoError(t, utils.LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml")))
	t.Setenv("SANITY_DATASET", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("SANITY_TOKEN", "")

	assert.Equal(t, "production", utils.GetConfig("SANITY_DATASET"))
	assert.Equal(t, "gemini-2.5-flash", utils.GetConfig("GEMINI_MODEL"))
	assert.Equal(t, "", utils.GetConfig("SANITY_TOKEN"))
	assert.True(t, utils.GetBoolConfig("SANITY_USE_CDN"))
}

func TestGetConfigFileThenEnv(t *testing.T) {
	path := writeConfig(t, "SANITY_PROJECT_ID: fromfile\nSITE_ID: site-a\nSANITY_USE_CDN: \"false\"\n")
	require.NoError(t, utils.LoadConfigFrom(path))
	t.Cleanup(func() { _ = utils.LoadConfigFrom("does-not-exist.yaml") })

	t.Setenv("SANITY_PROJECT_ID", "")
	t.Setenv("SITE_ID", "")
	t.Setenv("SANITY_USE_CDN", "")
	assert.Equal(t, "fromfile", utils.GetConfig("SANITY_PROJECT_ID"))
	assert.Equal(t, "site-a", utils.GetConfig("SITE_ID"))
	assert.False(t, utils.GetBoolConfig("SANITY_USE_CDN"))

	t.Setenv("SITE_ID", "site-b")
	assert.Equal(t, "site-b", utils.GetConfig("SITE_ID"))
}

func TestGetConfigUnknownKey(t *testing.T) {
	assert.Equal(t, "", utils.GetConfig("NOT_A_KEY"))
	assert.False(t, utils.GetBoolConfig("NOT_A_KEY"))
}

func TestLoadConfigFromRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "SANITY_PROJECT_ID: [unterminated\n")
	t.Cleanup(func() { _ = utils.LoadConfigFrom("does-not-exist.yaml") })

	err := utils.LoadConfigFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	t.Setenv("SANITY_PROJECT_ID", "")
	assert.Equal(t, "", utils.GetConfig("SANITY_PROJECT_ID"))
}
