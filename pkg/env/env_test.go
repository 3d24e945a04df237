package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/social-profile-service/pkg/env"
)

func TestParse(t *testing.T) {
	t.Setenv("ENV_TEST_INT", "12")
	t.Setenv("ENV_TEST_INVALID_INT", "twelve")

	v, err := env.Parse[int]("ENV_TEST_INT")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = env.Parse[int]("ENV_TEST_INVALID_INT")
	assert.Error(t, err)

	_, err = env.Parse[string]("ENV_TEST_MISSING")
	assert.ErrorIs(t, err, env.ErrNotFound)
}

func TestParseOptional(t *testing.T) {
	t.Setenv("ENV_TEST_DURATION", "5s")
	t.Setenv("ENV_TEST_BLANK", " ")

	d, err := env.ParseOptional[*time.Duration]("ENV_TEST_DURATION")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 5*time.Second, *d)

	blank, err := env.ParseOptional[*time.Duration]("ENV_TEST_BLANK")
	require.NoError(t, err)
	assert.Nil(t, blank)

	missing, err := env.ParseOptional[*bool]("ENV_TEST_MISSING")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestParseWithDefault(t *testing.T) {
	t.Setenv("ENV_TEST_BOOL", "false")

	v, err := env.ParseWithDefault("ENV_TEST_BOOL", true)
	require.NoError(t, err)
	assert.False(t, v)

	v, err = env.ParseWithDefault("ENV_TEST_MISSING", true)
	require.NoError(t, err)
	assert.True(t, v)
}
