// Package config はアプリケーション全体の設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	App   AppConfig   `envPrefix:""`
	DB    DBConfig    `envPrefix:"DB_"`
	Redis RedisConfig `envPrefix:"REDIS_"`
	Sync  SyncConfig  `envPrefix:"SYNC_"`
	Yahoo YahooConfig `envPrefix:"YAHOO_"`
}

// AppConfig はHTTPサーバーと認証まわりの設定です。
type AppConfig struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	JWTSecret string `env:"JWT_SECRET"`
}

// DBConfig はMySQL接続の設定です。
type DBConfig struct {
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST" envDefault:"127.0.0.1"`
	Port     int    `env:"PORT" envDefault:"3306"`
	Name     string `env:"NAME" envDefault:"stock_analysis"`
}

// DSN はGORMのMySQLドライバに渡すDSN文字列を返します。
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// RedisConfig はRedis接続の設定です。Hostが空の場合、キャッシュと
// トークンデナイリストは無効化されます。
type RedisConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"6379"`
	Password string `env:"PASSWORD"`
}

// Addr はgo-redisに渡すアドレス文字列を返します。
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SyncConfig は銘柄同期エンジンの設定です。
type SyncConfig struct {
	// Interval は全銘柄リフレッシュの周期です。
	Interval time.Duration `env:"INTERVAL" envDefault:"5m"`
	// Workers は1サイクル内の並行フェッチ数の上限です。
	Workers int `env:"WORKERS" envDefault:"5"`
	// BootstrapDelay はブートストラップ時のプロバイダー呼び出し間隔です。
	BootstrapDelay time.Duration `env:"BOOTSTRAP_DELAY" envDefault:"100ms"`
}

// YahooConfig は外部株価プロバイダーの設定です。
type YahooConfig struct {
	// BaseURL が空の場合は本番のYahoo Financeエンドポイントを使います。
	BaseURL string `env:"BASE_URL"`
	// FetchTimeout は1回のフェッチのHTTPタイムアウトです。
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
