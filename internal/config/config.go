package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Redis     RedisConfig
	Cart      CartConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// StoreConfig selects the key-value backend holding cart state
type StoreConfig struct {
	Backend string // "memory" or "redis"
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CartConfig struct {
	TTLHours int // 0 keeps carts until explicitly cleared
}

type RateLimitConfig struct {
	LoginRequestsPerMinute int
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CART_TTL_HOURS", 0)
	viper.SetDefault("LOGIN_REQUESTS_PER_MINUTE", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Store: StoreConfig{
			Backend: viper.GetString("STORE_BACKEND"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cart: CartConfig{
			TTLHours: viper.GetInt("CART_TTL_HOURS"),
		},
		RateLimit: RateLimitConfig{
			LoginRequestsPerMinute: viper.GetInt("LOGIN_REQUESTS_PER_MINUTE"),
		},
	}
}
