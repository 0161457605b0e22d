package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

type Config struct {
	Env         string `env:"ENV" env-default:"local"`
	HTTPAddr    string `env:"HTTP_ADDR" env-default:":5000"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	JWTSecret   string `env:"JWT_SECRET" env-required:"true"`
	WorkerCount int    `env:"WORKER_COUNT" env-default:"1"`
	Redis       RedisConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-required:"true"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

var (
	loadDotEnv = func() error { return godotenv.Load() }
	readEnv    = cleanenv.ReadEnv
)

// Load 先嘗試載入 .env（不存在則略過），再由環境變數填入設定
func Load() (*Config, error) {
	_ = loadDotEnv()

	cfg := new(Config)
	if err := readEnv(cfg); err != nil {
		return nil, fmt.Errorf("讀取環境變數失敗: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 檢查 cleanenv 無法以 tag 表達的限制
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("無效的 ENV: %q", c.Env)
	}
	if c.WorkerCount <= 0 {
		return errors.New("無效的 WORKER_COUNT: 必須大於 0")
	}
	return nil
}
