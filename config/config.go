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
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Slot engine rules.
	BaseUnitMinutes     int   `mapstructure:"BASE_UNIT_MINUTES"`
	DayFirstStartMinute int   `mapstructure:"DAY_FIRST_START_MINUTE"` // minutes from midnight, e.g. 600 for 10:00
	DayLastStartMinute  int   `mapstructure:"DAY_LAST_START_MINUTE"`  // e.g. 1050 for 17:30
	NonBlockingStatuses []int `mapstructure:"NON_BLOCKING_STATUSES"`  // booking statuses that release the slot
	ClosedWeekdays      []int `mapstructure:"CLOSED_WEEKDAYS"`        // 0 = Sunday .. 6 = Saturday
	BookingWindowDays   int   `mapstructure:"BOOKING_WINDOW_DAYS"`

	// Reservation session lifetime.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "campusbook")
	viper.SetDefault("BASE_UNIT_MINUTES", 30)
	viper.SetDefault("DAY_FIRST_START_MINUTE", 600)
	viper.SetDefault("DAY_LAST_START_MINUTE", 1050)
	viper.SetDefault("NON_BLOCKING_STATUSES", []int{0, 4, 6})
	viper.SetDefault("CLOSED_WEEKDAYS", []int{0, 6})
	viper.SetDefault("BOOKING_WINDOW_DAYS", 90)
	viper.SetDefault("SESSION_TTL_MINUTES", 10)

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
