package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	Log     LogConfig
	Redis   RedisConfig
	Cache   CacheConfig
}

type AppConfig struct {
	Host       string
	Port       string
	Env        string
	CORSOrigin string
}

type DatasetConfig struct {
	Path string
}

type LogConfig struct {
	Level string
}

// RedisConfig is optional; an empty Host disables the dashboard cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL time.Duration
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// LoadConfig reads envFile (dotenv format) and overlays the process environment.
// A missing file is tolerated so the service can run from environment variables alone.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8060")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_CORS_ORIGIN", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATASET_PATH", "KaggleV2-May-2016.csv")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "10m")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil || cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Host:       v.GetString("APP_HOST"),
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			CORSOrigin: v.GetString("APP_CORS_ORIGIN"),
		},
		Dataset: DatasetConfig{
			Path: v.GetString("DATASET_PATH"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TTL: cacheTTL,
		},
	}

	return config, nil
}
