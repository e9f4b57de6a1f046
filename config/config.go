package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration.
	MongoURL string `mapstructure:"MONGO_URL"`
	DBName   string `mapstructure:"DB_NAME"`

	// Comma-separated list of allowed CORS origins.
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// Resend email configuration. An empty API key disables
	// outbound notifications.
	ResendAPIKey      string `mapstructure:"RESEND_API_KEY"`
	SenderEmail       string `mapstructure:"SENDER_EMAIL"`
	NotificationEmail string `mapstructure:"NOTIFICATION_EMAIL"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Load a local .env file first so viper sees its values as env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

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
	// Empty means the environment's default level (info in production,
	// debug otherwise).
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "firemoto")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("SENDER_EMAIL", "onboarding@resend.dev")
	viper.SetDefault("NOTIFICATION_EMAIL", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// AllowedOrigins splits the configured CORS origin list.
func AllowedOrigins() []string {
	origins := strings.Split(AppConfig.CORSOrigins, ",")
	for i, o := range origins {
		origins[i] = strings.TrimSpace(o)
	}
	return origins
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
