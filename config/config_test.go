package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/fc60/fc60"
	"github.com/warp/fc60/numerology"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, numerology.Pythagorean, cfg.System)
	assert.Equal(t, 0, cfg.TZOffsetMinutes)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FC60_PORT", "3000")
	t.Setenv("FC60_CORS_ORIGINS", "http://localhost:5173,https://fc60.example")
	t.Setenv("FC60_DEFAULT_SYSTEM", "Arabic")
	t.Setenv("FC60_DEFAULT_TZ", "+03:30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://fc60.example"}, cfg.CORSOrigins)
	assert.Equal(t, numerology.Abjad, cfg.System)
	assert.Equal(t, 210, cfg.TZOffsetMinutes)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("FC60_PORT", "not-an-int")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")

	t.Setenv("FC60_PORT", "8080")
	t.Setenv("FC60_DEFAULT_SYSTEM", "tarot")
	_, err = Load()
	assert.ErrorIs(t, err, numerology.ErrUnknownSystem)

	t.Setenv("FC60_DEFAULT_SYSTEM", "chaldean")
	t.Setenv("FC60_DEFAULT_TZ", "+16:00")
	_, err = Load()
	assert.ErrorIs(t, err, fc60.ErrOutOfRange)
}

func TestResolve_AfterFlagOverride(t *testing.T) {
	cfg := Config{Port: 9000, SystemTag: "chal", TZ: "Z"}
	require.NoError(t, cfg.Resolve())
	assert.Equal(t, numerology.Chaldean, cfg.System)

	cfg.Port = 0
	assert.Error(t, cfg.Resolve())
}
