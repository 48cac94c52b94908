package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	withArgs(t, "-a", ":9000", "-d", "postgres://db/auth", "-s", "flag-secret", "-t", "600", "-r", "86400")

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":9000", c.EndpointAddrHTTP)
	assert.Equal(t, "postgres://db/auth", c.DatabaseDSN)
	assert.Equal(t, "flag-secret", c.SecretKey)
	assert.Equal(t, 600*time.Second, c.AccessTokenValidityDuration)
	assert.Equal(t, 86400*time.Second, c.RefreshTokenValidityDuration)
}

func TestParseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	withArgs(t)

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, 15*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 72*time.Hour, c.RefreshTokenValidityDuration)
}
