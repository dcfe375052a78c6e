package env_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/profile-client/pkg/env"
)

func TestParse(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "12")
	t.Setenv("TEST_ENV_BAD", "twelve")

	v, err := env.Parse[int]("TEST_ENV_INT")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = env.Parse[int]("TEST_ENV_BAD")
	assert.ErrorIs(t, err, env.ErrInvalidValue)

	_, err = env.Parse[int]("TEST_ENV_MISSING")
	assert.ErrorIs(t, err, env.ErrNotFound)
}

func TestParseOptionalAndDefault(t *testing.T) {
	t.Setenv("TEST_ENV_TIMEOUT", "5s")
	t.Setenv("TEST_ENV_EMPTY", "")

	timeout, err := env.ParseOptional[time.Duration]("TEST_ENV_TIMEOUT")
	require.NoError(t, err)
	require.NotNil(t, timeout)
	assert.Equal(t, 5*time.Second, *timeout)

	empty, err := env.ParseOptional[time.Duration]("TEST_ENV_EMPTY")
	require.NoError(t, err)
	assert.Nil(t, empty)

	url, err := env.ParseDefault("TEST_ENV_URL_MISSING", "http://localhost:5000/api")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", url)
}

func TestMust_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		env.Must[string](env.Parse[string]("TEST_ENV_MISSING"))
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("TEST_DOTENV_TOKEN=from-file\nTEST_DOTENV_KEPT=from-file\n"), 0o600))

	t.Setenv("TEST_DOTENV_KEPT", "from-env")
	t.Setenv("TEST_DOTENV_TOKEN", "")
	require.NoError(t, os.Unsetenv("TEST_DOTENV_TOKEN"))

	require.NoError(t, env.LoadDotEnv(file, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "from-file", os.Getenv("TEST_DOTENV_TOKEN"))
	assert.Equal(t, "from-env", os.Getenv("TEST_DOTENV_KEPT"))
}
