// Package config 负责加载与校验应用配置
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ats-match-go/internal/logger"
)

// Config 应用配置
type Config struct {
	// Server HTTP服务配置
	Server ServerConfig `yaml:"server"`

	// Extractor 文档文本抽取配置
	Extractor ExtractorConfig `yaml:"extractor"`

	// Tika Tika服务器配置，extractor.engine为tika时生效
	Tika TikaConfig `yaml:"tika"`

	// RateLimit 分析接口的限流配置
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Dict 词典覆盖文件配置
	Dict DictConfig `yaml:"dict"`

	// Logger 日志配置
	Logger logger.Config `yaml:"logger"`
}

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080"
	// MaxUploadSizeMB 上传简历文件的大小上限(MB)
	MaxUploadSizeMB int `yaml:"max_upload_size_mb"`
	// APIKeys 非空时启用X-API-Key鉴权
	APIKeys []string `yaml:"api_keys"`
}

// ExtractorConfig 文本抽取引擎配置
type ExtractorConfig struct {
	// Engine 抽取引擎: "tika"、"eino" 或 "local"
	Engine string `yaml:"engine"`
}

// TikaConfig Tika服务器配置
type TikaConfig struct {
	ServerURL string `yaml:"server_url"`      // Tika服务器URL
	Timeout   int    `yaml:"timeout_seconds"` // 请求超时(秒)
}

// RateLimitConfig 令牌桶限流配置
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled"`
	// Capacity 桶容量，即允许的突发请求数
	Capacity int `yaml:"capacity"`
	// RefillPerSecond 每秒补充的令牌数
	RefillPerSecond float64 `yaml:"refill_per_second"`
}

// DictConfig 词典覆盖文件配置
type DictConfig struct {
	// Path 可选的YAML覆盖文件路径，为空时使用内置词典
	Path string `yaml:"path"`
}

// LoadConfig 从文件加载配置。
// 未指定路径时在常见位置查找；找不到文件则返回默认配置。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".ats-match", "config.yaml"),
		}
		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths,
				filepath.Join(execDir, "config.yaml"),
				filepath.Join(execDir, "..", "config.yaml"),
			)
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
		if configPath == "" {
			return defaultConfig(), nil
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 允许环境变量覆盖部署相关的配置
	if env := os.Getenv("TIKA_SERVER_URL"); env != "" {
		config.Tika.ServerURL = env
	}
	if env := os.Getenv("ATS_API_KEYS"); env != "" {
		config.Server.APIKeys = splitAndTrim(env)
	}

	applyDefaults(config)
	return config, nil
}

func defaultConfig() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}

func applyDefaults(c *Config) {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Server.MaxUploadSizeMB <= 0 {
		c.Server.MaxUploadSizeMB = 10
	}
	if c.Extractor.Engine == "" {
		c.Extractor.Engine = "local"
	}
	if c.Tika.ServerURL == "" {
		c.Tika.ServerURL = "http://localhost:9998"
	}
	if c.Tika.Timeout <= 0 {
		c.Tika.Timeout = 60
	}
	if c.RateLimit.Capacity <= 0 {
		c.RateLimit.Capacity = 20
	}
	if c.RateLimit.RefillPerSecond <= 0 {
		c.RateLimit.RefillPerSecond = 10
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
