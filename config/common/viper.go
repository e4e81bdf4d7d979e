package common

import (
	"errors"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
	"io/fs"
	"strings"
	"time"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()
	setDefaults(config)

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *fs.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			panic("failed read config")
		}
		log.Warn("No .env file found, using environment only")
	}
	return &Config{Viper: config}
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("APP_NAME", "match-chat-api")
	config.SetDefault("APP_PORT", "7720")
	config.SetDefault("CORS_ORIGINS", "http://localhost:8080")
	config.SetDefault("LOG_LEVEL", "info")
	config.SetDefault("LOG_DIR", "logs")
	config.SetDefault("DB_TIMEZONE", "UTC")
	config.SetDefault("DB_MAX_IDLE_CONNS", 10)
	config.SetDefault("DB_MAX_OPEN_CONNS", 100)
	config.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	config.SetDefault("JWT_EXPIRATION", "1h")
	config.SetDefault("GOOGLE_JWKS_URL", "https://www.googleapis.com/oauth2/v3/certs")
	config.SetDefault("WS_PING_INTERVAL", "25s")
	config.SetDefault("WS_PONG_WAIT", "60s")
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetListenAddress() string {
	return ":" + c.Viper.GetString("APP_PORT")
}

func (c *Config) GetCorsOrigins() string {
	return c.Viper.GetString("CORS_ORIGINS")
}

func (c *Config) GetLogLevel() string {
	return strings.ToLower(c.Viper.GetString("LOG_LEVEL"))
}

func (c *Config) GetLogDir() string {
	return c.Viper.GetString("LOG_DIR")
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort, dbTimezone string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")
	dbTimezone = c.Viper.GetString("DB_TIMEZONE")

	return dbHost, dbUser, dbPassword, dbName, dbPort, dbTimezone
}

func (c *Config) GetDatabasePool() (maxIdle, maxOpen int, maxLifetime time.Duration) {
	return c.Viper.GetInt("DB_MAX_IDLE_CONNS"), c.Viper.GetInt("DB_MAX_OPEN_CONNS"), c.Viper.GetDuration("DB_CONN_MAX_LIFETIME")
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

func (c *Config) GetJwtExpiration() time.Duration {
	return c.Viper.GetDuration("JWT_EXPIRATION")
}

func (c *Config) GetGoogleConfig() (clientID, jwksURL string) {
	return c.Viper.GetString("GOOGLE_CLIENT_ID"), c.Viper.GetString("GOOGLE_JWKS_URL")
}

func (c *Config) GetWebSocketConfig() (pingInterval, pongWait time.Duration) {
	return c.Viper.GetDuration("WS_PING_INTERVAL"), c.Viper.GetDuration("WS_PONG_WAIT")
}
