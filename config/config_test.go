package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("DRAFT_STORE", "redis")
	t.Setenv("MAX_BULK_FIELDS", "12")

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "redis", AppConfig.DraftStore)
	assert.Equal(t, 12, AppConfig.MaxBulkFields)
	assert.Equal(t, 90, AppConfig.DefaultSlotMinutes)
	assert.Equal(t, "mongo", AppConfig.SubmitMode)
	assert.Equal(t, "memory", AppConfig.GeoCache)
	require.False(t, IsProduction())
}
