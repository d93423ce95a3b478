package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		UI
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		SecretKey  string
		TokenTTL   time.Duration
		BcryptCost int
	}
	UI struct {
		StaticPath string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("static_path", "./static")

	// Auth defaults
	v.SetDefault("secret_key", "")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("bcrypt_cost", 12)

	secret := v.GetString("SECRET_KEY")
	if secret == "" {
		log.Printf("WARNING: SECRET_KEY is not set, falling back to the insecure development default. Set 'SECRET_KEY' before deploying.")
		secret = DevSecretKey
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			SecretKey:  secret,
			TokenTTL:   v.GetDuration("TOKEN_TTL"),
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		UI: UI{
			StaticPath: v.GetString("STATIC_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
