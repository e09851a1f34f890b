package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix は任意の調整用環境変数の接頭辞
// 例: TEAM_STATS_RATE_INTERVAL=250ms は slack.rate_interval を上書きする
const EnvPrefix = "TEAM_STATS_"

// TokenEnv はSlackのトークンを保持する環境変数
const TokenEnv = "SLACK_TOKEN"

// ErrMissingToken はトークンが設定されていない場合のエラー
var ErrMissingToken = errors.New(TokenEnv + " environment variable not set")

// Config は両方のコマンドで共通の設定
type Config struct {
	Slack SlackConfig `koanf:"slack"`
	Log   LogConfig   `koanf:"log"`
}

// SlackConfig はSlack APIクライアントの設定
type SlackConfig struct {
	Token        string        `koanf:"token"`
	APIURL       string        `koanf:"api_url"` // 空の場合はslack-goの既定のエンドポイント
	PageSize     int           `koanf:"page_size"`
	RateInterval time.Duration `koanf:"rate_interval"` // 0の場合は間隔を空けない
}

// LogConfig は標準エラー出力のロガーの設定
type LogConfig struct {
	Level string `koanf:"level"`
}

// Validate は読み込んだ値を検証する
func (c *Config) Validate() error {
	if c.Slack.Token == "" {
		return ErrMissingToken
	}
	if c.Slack.PageSize <= 0 || c.Slack.PageSize > 1000 {
		return fmt.Errorf("slack.page_size must be between 1 and 1000, got %d", c.Slack.PageSize)
	}
	if c.Slack.RateInterval < 0 {
		return fmt.Errorf("slack.rate_interval must not be negative, got %s", c.Slack.RateInterval)
	}
	return nil
}

// Load は既定値、YAMLファイル（configPathが空でない場合）、カレントディレクトリの.env、
// 環境変数の順に設定を読み込む（後のものが優先される）
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. 既定値
	defaults := map[string]interface{}{
		"slack.api_url":       "",
		"slack.page_size":     200,
		"slack.rate_interval": "100ms",
		"log.level":           "info",
	}
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	// 2. 設定ファイル
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// 3. .env（設定済みの環境変数は上書きしない）
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// 4. 環境変数
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if key == "log_level" {
			return "log.level"
		}
		return "slack." + key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	if token, ok := os.LookupEnv(TokenEnv); ok {
		if err := k.Set("slack.token", token); err != nil {
			return nil, fmt.Errorf("failed to set token: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
