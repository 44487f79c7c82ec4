package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("LAWPOINT_JWT_SECRET", "test-secret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "mongodb://localhost:27017/lawpoint", cfg.MongoURI)
	assert.Equal(t, "test-secret", cfg.JWTSigningKey)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LAWPOINT_JWT_SECRET", "test-secret")
	t.Setenv("LAWPOINT_ADDR", ":9999")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017/lawpoint")
	t.Setenv("LAWPOINT_TOKEN_TTL", "30m")
	t.Setenv("LAWPOINT_BCRYPT_COST", "12")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "mongodb://db.internal:27017/lawpoint", cfg.MongoURI)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestFromEnvRequiresSigningKey(t *testing.T) {
	t.Setenv("LAWPOINT_JWT_SECRET", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LAWPOINT_JWT_SECRET")
}

func TestFromEnvRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("LAWPOINT_JWT_SECRET", "test-secret")
	t.Setenv("LAWPOINT_TOKEN_TTL", "-1h")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LAWPOINT_TOKEN_TTL")
}
