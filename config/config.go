package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	TrustedProxies    string `mapstructure:"TRUSTED_PROXIES"` // comma-separated IPs/CIDRs

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB  int    `mapstructure:"REDIS_DRAFT_DB"`
	RedisGeoDB    int    `mapstructure:"REDIS_GEO_DB"`

	// Draft sessions.
	DraftStore         string `mapstructure:"DRAFT_STORE"` // memory | redis
	DraftTTLMinutes    int    `mapstructure:"DRAFT_TTL_MINUTES"`
	DefaultSlotMinutes int    `mapstructure:"DEFAULT_SLOT_MINUTES"`
	MaxBulkFields      int    `mapstructure:"MAX_BULK_FIELDS"`

	// Province and ward directory.
	GeoAPIURL        string `mapstructure:"GEO_API_URL"`
	GeoCache         string `mapstructure:"GEO_CACHE"` // memory | redis
	GeoCacheTTLHours int    `mapstructure:"GEO_CACHE_TTL_HOURS"`

	// Submission backend.
	SubmitMode           string `mapstructure:"SUBMIT_MODE"` // mongo | http
	SubmitURL            string `mapstructure:"SUBMIT_URL"`
	SubmitToken          string `mapstructure:"SUBMIT_TOKEN"`
	SubmitTimeoutSeconds int    `mapstructure:"SUBMIT_TIMEOUT_SECONDS"`
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

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TRUSTED_PROXIES", "127.0.0.1,::1")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "sportify")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DRAFT_DB", 0)
	viper.SetDefault("REDIS_GEO_DB", 1)
	viper.SetDefault("DRAFT_STORE", "memory")
	viper.SetDefault("DRAFT_TTL_MINUTES", 120)
	viper.SetDefault("DEFAULT_SLOT_MINUTES", 90)
	viper.SetDefault("MAX_BULK_FIELDS", 20)
	viper.SetDefault("GEO_API_URL", "https://provinces.open-api.vn/api/v2")
	viper.SetDefault("GEO_CACHE", "memory")
	viper.SetDefault("GEO_CACHE_TTL_HOURS", 24)
	viper.SetDefault("SUBMIT_MODE", "mongo")
	viper.SetDefault("SUBMIT_URL", "")
	viper.SetDefault("SUBMIT_TOKEN", "")
	viper.SetDefault("SUBMIT_TIMEOUT_SECONDS", 15)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
