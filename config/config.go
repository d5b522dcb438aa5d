package config

import (
	"encoding/base64"
	"encoding/hex"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Timezone    string `mapstructure:"TIMEZONE"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Admin access.
	AdminAPIToken string `mapstructure:"ADMIN_API_TOKEN"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`

	// Key material for reservation PII encryption and search indexing.
	// Both must decode (base64 or hex) to at least 32 bytes.
	ReservationMasterKey   string `mapstructure:"RESERVATION_MASTER_KEY"`
	ReservationIndexSecret string `mapstructure:"RESERVATION_INDEX_SECRET"`

	// Abuse controls.
	MaxRequestsPerMin        int `mapstructure:"MAX_REQUESTS_PER_MIN"`
	ReservationRateLimit     int `mapstructure:"RESERVATION_RATE_LIMIT"`
	ReservationRateWindowSec int `mapstructure:"RESERVATION_RATE_WINDOW_SEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TIMEZONE", "Europe/Berlin")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("RESERVATION_RATE_LIMIT", 3)
	viper.SetDefault("RESERVATION_RATE_WINDOW_SEC", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Refuse to start without proper key material; running with weak or
	// absent keys would silently store recoverable PII.
	if _, err := DecodeKey(AppConfig.ReservationMasterKey); err != nil {
		log.Fatalf("RESERVATION_MASTER_KEY invalid: %v", err)
	}
	if _, err := DecodeKey(AppConfig.ReservationIndexSecret); err != nil {
		log.Fatalf("RESERVATION_INDEX_SECRET invalid: %v", err)
	}
}

// DecodeKey decodes base64- or hex-encoded key material and enforces the
// 256-bit minimum length.
func DecodeKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errMissingKey
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		raw, err = hex.DecodeString(encoded)
	}
	if err != nil {
		return nil, errMalformedKey
	}
	if len(raw) < 32 {
		return nil, errShortKey
	}
	return raw, nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
