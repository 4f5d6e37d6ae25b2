package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	c := New()
	c.Postgres.User = "postgres"
	c.Postgres.Password = "postgres"
	c.JWT.Secret = "0123456789abcdef0123"
	return c
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{
			name:   "defaults with credentials",
			modify: func(c *Config) {},
		},
		{
			name:    "unknown env",
			modify:  func(c *Config) { c.Env = "dev" },
			wantErr: true,
		},
		{
			name:    "short jwt secret",
			modify:  func(c *Config) { c.JWT.Secret = "short" },
			wantErr: true,
		},
		{
			name:    "missing postgres password",
			modify:  func(c *Config) { c.Postgres.Password = "" },
			wantErr: true,
		},
		{
			name:    "bad broker address",
			modify:  func(c *Config) { c.Kafka.Brokers = []string{"localhost"} },
			wantErr: true,
		},
		{
			name:    "zero cache capacity",
			modify:  func(c *Config) { c.Cache.Capacity = 0 },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.modify(&c)

			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_ReadsEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("POSTGRES_PORT", "not-a-number")

	c := New()

	require.Len(t, c.Kafka.Brokers, 2)
	assert.Equal(t, "9000", c.HTTP.Port)
	assert.Equal(t, "k2:9092", c.Kafka.Brokers[1])
	assert.Equal(t, time.Hour, c.JWT.TTL)
	assert.Equal(t, 5432, c.Postgres.Port)
}
