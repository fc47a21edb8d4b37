package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-screener-go/internal/constants"
)

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 监听地址，例如 ":5000"
	// CORS 允许的来源列表，为空时允许所有来源
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	TimeFormat   string `yaml:"time_format"`
	ReportCaller bool   `yaml:"report_caller"`
}

// ParserConfig 文档解析配置
type ParserConfig struct {
	// 单个上传文件的大小上限（字节），0 表示使用默认值
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// AugmenterConfig 可选的实体增强器（LLM）配置
// 未启用时抽取流程完全不依赖任何外部模型
type AugmenterConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	APIURL  string `yaml:"api_url"`
	Model   string `yaml:"model"`
}

// Config 应用程序配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    LoggerConfig    `yaml:"logger"`
	Parser    ParserConfig    `yaml:"parser"`
	Augmenter AugmenterConfig `yaml:"augmenter"`
}

// LoadConfig 从指定路径加载 YAML 配置文件
// 路径为相对路径时相对于当前工作目录解析
func LoadConfig(configPath string) (*Config, error) {
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("获取工作目录失败: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configPath, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", configPath, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults 填充未显式配置的默认值
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":5000"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
	if c.Parser.MaxUploadBytes <= 0 {
		c.Parser.MaxUploadBytes = constants.DefaultMaxUploadBytes
	}
}

// validate 校验配置项之间的约束
func (c *Config) validate() error {
	if !strings.Contains(c.Server.Address, ":") {
		return fmt.Errorf("server.address 格式非法: %q，应为 host:port 或 :port", c.Server.Address)
	}
	if c.Augmenter.Enabled && c.Augmenter.APIKey == "" {
		return fmt.Errorf("augmenter.enabled 为 true 时必须提供 augmenter.api_key")
	}
	return nil
}
