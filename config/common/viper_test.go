package common

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaultsAndOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("JWT_SECRET", "secret")
	v.Set("WS_PONG_WAIT", "90s")
	config := &Config{Viper: v}

	ping, pong := config.GetWebSocketConfig()
	assert.Equal(t, 25*time.Second, ping)
	assert.Equal(t, 90*time.Second, pong)
	assert.Equal(t, []byte("secret"), config.GetJwtConfig())
	assert.Equal(t, time.Hour, config.GetJwtExpiration())
	assert.Equal(t, ":7720", config.GetListenAddress())

	maxIdle, maxOpen, lifetime := config.GetDatabasePool()
	assert.Equal(t, 10, maxIdle)
	assert.Equal(t, 100, maxOpen)
	assert.Equal(t, 5*time.Minute, lifetime)
}
