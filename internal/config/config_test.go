package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.StatsExact)
	assert.Equal(t, 5*time.Minute, cfg.StatsCacheTTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
}

func TestLoad_StoreNotConfiguredByDefault(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.StoreConfigured())
	assert.False(t, cfg.CacheConfigured())
	assert.False(t, cfg.SMTPConfigured())
}

func TestLoad_StoreConfigured(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.StoreConfigured())
}

func TestLoad_InvalidHTTPPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestStatsSampleLimit(t *testing.T) {
	t.Run("exact aggregation has no cap", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.StatsSampleLimit())
	})

	t.Run("capped aggregation uses sample size", func(t *testing.T) {
		t.Setenv("STATS_EXACT", "false")
		t.Setenv("STATS_SAMPLE_SIZE", "20")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.StatsSampleLimit())
	})
}

func TestLoad_InvalidSampleSize(t *testing.T) {
	t.Setenv("STATS_EXACT", "false")
	t.Setenv("STATS_SAMPLE_SIZE", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid stats sample size")
}

func TestLoad_KafkaBrokerList(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
}
