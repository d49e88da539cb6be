package infra

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"ENV"`
	PostgresURL string `mapstructure:"POSTGRES_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`

	// Generative schedule provider: "gemini", "openai" or "none".
	AIProvider string `mapstructure:"AI_PROVIDER"`
	AIAPIKey   string `mapstructure:"AI_API_KEY"`
	AIModel    string `mapstructure:"AI_MODEL"`
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

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("POSTGRES_URL", "postgres://localhost:5432/luxing?sslmode=disable")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("AI_PROVIDER", "none")
	viper.SetDefault("AI_API_KEY", "")
	viper.SetDefault("AI_MODEL", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func IsProduction() bool {
	return AppConfig.Env == "production"
}
