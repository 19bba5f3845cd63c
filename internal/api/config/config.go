package config

import (
	"errors"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量优先
func LoadConfig() error {
	// .env 只在本地开发时存在
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using config file and environment only")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	Cfg = &cfg

	return nil
}

// applyDefaults 填充未配置的业务参数
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Gamification.RewardAmount <= 0 {
		c.Gamification.RewardAmount = 10
	}
	if c.Gamification.StreakPolicy == "" {
		c.Gamification.StreakPolicy = StreakPolicyTrust
	}
	if c.Gamification.LeaderboardCacheSeconds <= 0 {
		c.Gamification.LeaderboardCacheSeconds = 60
	}
	if c.JWT.ExpireHours <= 0 {
		c.JWT.ExpireHours = 24 * 7
	}
	if c.JWT.CookieName == "" {
		c.JWT.CookieName = "session"
	}
	if c.RateLimit.PerMinute <= 0 {
		c.RateLimit.PerMinute = 20
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = LLMProviderOpenAI
	}
	if c.LLM.MaxConcurrency <= 0 {
		c.LLM.MaxConcurrency = 5
	}
}
