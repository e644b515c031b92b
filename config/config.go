package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config struct holds all configuration values needed by the application.
// The struct tags (mapstructure) tell Viper how to map environment variables to struct fields.
type Config struct {
	DBSource            string        `mapstructure:"DB_SOURCE"`             // Database connection string
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`        // Address where the server will run (e.g., "localhost:8080")
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`   // Secret key for signing tokens
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"` // Duration tokens will remain valid (e.g., "15m", "1h")
	GeminiAPIURL        string        `mapstructure:"GEMINI_API_URL"`
	GeminiAPIKey        string        `mapstructure:"GEMINI_API_KEY"` // API key for skill suggestions
	FrontendURL         string        `mapstructure:"FRONTEND_URL"`   // Allowed CORS origin
	ExchangeXPReward    int64         `mapstructure:"EXCHANGE_XP_REWARD"`
	ExploreLimit        int32         `mapstructure:"EXPLORE_LIMIT"`
}

// LoadConfig loads environment variables from a file and environment into the Config struct
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	// Add the directory where the config file is located
	v.AddConfigPath(path)

	// app.env, read as a .env-style file
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("ACCESS_TOKEN_DURATION", "15m")
	v.SetDefault("EXCHANGE_XP_REWARD", 50)
	v.SetDefault("EXPLORE_LIMIT", 50)

	// Automatically read in any environment variables that match the keys
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}
