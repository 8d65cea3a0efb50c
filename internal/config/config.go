package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	Database struct {
		Driver string `mapstructure:"driver"` // sqlite | postgres
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`
	Redis struct {
		Addr string `mapstructure:"addr"`
		DB   int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Cache struct {
		TTL    time.Duration `mapstructure:"ttl"`
		Prefix string        `mapstructure:"prefix"`
	} `mapstructure:"cache"`
	Feed struct {
		PageSize int `mapstructure:"page_size"`
	} `mapstructure:"feed"`
	Auth struct {
		JWTSecret string        `mapstructure:"jwt_secret"`
		TokenTTL  time.Duration `mapstructure:"token_ttl"`
	} `mapstructure:"auth"`
	Media struct {
		Root string `mapstructure:"root"`
	} `mapstructure:"media"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Sentry struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"sentry"`
	Tracing struct {
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"tracing"`
	RateLimit struct {
		RPS   float64 `mapstructure:"rps"` // 0 disables limiting
		Burst int     `mapstructure:"burst"`
	} `mapstructure:"rate_limit"`
}

// Load reads the config file (optional) and YATUBE_* env overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("YATUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/yatube.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", "20s")
	v.SetDefault("cache.prefix", "page")
	v.SetDefault("feed.page_size", 10)
	v.SetDefault("auth.jwt_secret", "change-me")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("media.root", "data/media")
	v.SetDefault("log.level", "info")
	v.SetDefault("rate_limit.rps", 0)
	v.SetDefault("rate_limit.burst", 0)
}
