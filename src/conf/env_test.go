package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromEnvDefaults(t *testing.T) {
	t.Parallel()
	env := fromLookup(func(string) (string, bool) { return "", false })
	assert.Equal(t, DefaultEnv(), env)
	assert.True(t, env.AdditionalProperties)
	assert.Equal(t, MAXDEPTH, env.MaxDepth)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAdditionalProperties, "false")
	t.Setenv(EnvRepair, "1")
	t.Setenv(EnvDebug, "not a bool")
	t.Setenv(EnvStamp, "%Y")
	t.Setenv(EnvMaxDepth, "12")
	env := FromEnv()
	assert.False(t, env.AdditionalProperties)
	assert.True(t, env.Repair)
	assert.False(t, env.Debug)
	assert.Equal(t, "%Y", env.Stamp)
	assert.Equal(t, 12, env.MaxDepth)
}

func TestLoad(t *testing.T) {
	path := writeDotEnv(t, "JSTYPE_ADDITIONAL_PROPERTIES=false\nJSTYPE_STAMP=from file\nJSTYPE_MAX_DEPTH=nope\n")
	t.Setenv(EnvStamp, "from process")
	env, err := Load(path)
	require.NoError(t, err)
	assert.False(t, env.AdditionalProperties)
	assert.Equal(t, "from process", env.Stamp)
	assert.Equal(t, MAXDEPTH, env.MaxDepth)
	_, set := os.LookupEnv(EnvAdditionalProperties)
	assert.False(t, set)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
