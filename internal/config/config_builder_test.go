package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Build_MergesSources(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8000"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "/tmp/token.db"}}},
		&StructuredConfig{Workers: Workers{RefreshInterval: time.Minute}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/token.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestConfigBuilder_Build_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "from-env:8000"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "from-flags:9000", RequestTimeout: 10 * time.Second}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	// The first source keeps the fields it set; later sources only fill gaps.
	assert.Equal(t, "from-env:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestConfigBuilder_Build_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestConfigBuilder_WithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	got := b.withJSON()

	require.NoError(t, got.err)
	assert.Len(t, got.configs, 1)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ClientConfig
		expected error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "localhost:8000", RequestTimeout: time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: "token.db"}},
				Workers: ClientWorkers{RefreshInterval: time.Minute},
			},
		},
		{
			name: "in-memory dsn rejected",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "localhost:8000", RequestTimeout: time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: ":memory:"}},
				Workers: ClientWorkers{RefreshInterval: time.Minute},
			},
			expected: ErrInvalidStorageConfigs,
		},
		{
			name: "missing adapter address",
			cfg: ClientConfig{
				Adapter: ClientAdapter{RequestTimeout: time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: "token.db"}},
				Workers: ClientWorkers{RefreshInterval: time.Minute},
			},
			expected: ErrInvalidAdapterConfigs,
		},
		{
			name: "zero refresh interval",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "localhost:8000", RequestTimeout: time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: "token.db"}},
			},
			expected: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultTokenDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultRefreshInterval, cfg.Workers.RefreshInterval)
}
