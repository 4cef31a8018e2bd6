package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream tenant API configuration.
	UpstreamBaseURL string `mapstructure:"UPSTREAM_BASE_URL"`
	ClientID        string `mapstructure:"CLIENT_ID"`
	ClientSecret    string `mapstructure:"CLIENT_SECRET"`
	LocationID      string `mapstructure:"LOCATION_ID"`
	RoomID          string `mapstructure:"ROOM_ID"`

	// Display timezone and static fallback business hours.
	Timezone          string `mapstructure:"TIMEZONE"`
	FallbackOpenTime  string `mapstructure:"FALLBACK_OPEN_TIME"`
	FallbackCloseTime string `mapstructure:"FALLBACK_CLOSE_TIME"`

	SlotWidthMins      int `mapstructure:"SLOT_WIDTH_MINS"`
	RequestTimeoutSecs int `mapstructure:"REQUEST_TIMEOUT_SECS"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TIMEZONE", "America/New_York")
	viper.SetDefault("FALLBACK_OPEN_TIME", "9:00 AM")
	viper.SetDefault("FALLBACK_CLOSE_TIME", "5:00 PM")
	viper.SetDefault("SLOT_WIDTH_MINS", 30)
	viper.SetDefault("REQUEST_TIMEOUT_SECS", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
