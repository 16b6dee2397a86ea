// Loads config.yaml + env overrides into a Config struct via Viper.

package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config mirrors the shape of our expected configuration. Viper
// unmarshals values from YAML and env variables into these fields.
type Config struct {
	AppName    string `mapstructure:"app_name"`
	Env        string `mapstructure:"env"`         // dev|staging|prod
	HTTPPort   string `mapstructure:"http_port"`   // "8080"
	JWTSecret  string `mapstructure:"jwt_secret"`  // strong secret
	JWTExpires string `mapstructure:"jwt_expires"` // token lifetime, e.g. "72h"

	// Document store settings.
	MongoURI string `mapstructure:"mongo_uri"` // mongodb://localhost:27017
	MongoDB  string `mapstructure:"mongo_db"`  // database name

	// Redis settings; empty redis_addr disables the audit logger.
	RedisAddr string `mapstructure:"redis_addr"`     // "localhost:6379"
	RedisDB   int    `mapstructure:"redis_db"`       // logical DB number
	RedisPass string `mapstructure:"redis_password"` // password, if any
}

// JWTExpiry parses the configured token lifetime.
func (c *Config) JWTExpiry() time.Duration {
	d, err := time.ParseDuration(c.JWTExpires)
	if err != nil {
		log.Fatalf("[config] invalid jwt_expires value: %v", err)
	}
	return d
}

// Load reads config file + env + defaults and returns the merged Config.
func Load() *Config {
	v := viper.New()
	v.SetConfigName("config") // expects config.(yaml|yml|json...)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("APP") // env overrides like APP_HTTP_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults (safe for local)
	v.SetDefault("app_name", "MarketplaceAPI")
	v.SetDefault("env", "dev")
	v.SetDefault("http_port", "8080")
	v.SetDefault("jwt_expires", "72h")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "marketplace")
	v.SetDefault("redis_addr", "") // audit logging off unless configured
	v.SetDefault("redis_db", 0)

	// Proceed on defaults + env when no config file is present.
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[config] no config file found, using defaults/env: %v", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("[config] unmarshal error: %v", err)
	}

	// Fail fast on an unparseable lifetime instead of at first login.
	_ = c.JWTExpiry()

	return &c
}
