package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Store struct {
		Backend string // "sqlite" or "redis"
	}
	Database struct {
		Path string
	}
	Redis struct {
		Addr     string
		Password string
	}
	Auth struct {
		TokenSecret string
	}
	Sim struct {
		// Latency is slept on every service call to model network delay.
		Latency time.Duration
	}
	AI struct {
		BaseURL string
		APIKey  string
		Model   string
	}
	Storage struct {
		Bucket    string
		KeyPrefix string
		Region    string
		Endpoint  string
		PublicURL string
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	_ = godotenv.Load() // optional .env

	v := viper.New()
	v.SetEnvPrefix("INTERNCONNECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("store.backend", "sqlite")
	v.SetDefault("database.path", "data/internconnect.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("auth.tokensecret", "")
	v.SetDefault("sim.latency", "600ms")
	v.SetDefault("ai.baseurl", "https://generativelanguage.googleapis.com")
	v.SetDefault("ai.apikey", "")
	v.SetDefault("ai.model", "gemini-3-flash-preview")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.keyprefix", "logos")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.publicurl", "")
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
