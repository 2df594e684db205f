package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Email    EmailConfig    `mapstructure:"email"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        string        `mapstructure:"port"`
	Mode        string        `mapstructure:"mode"`
	Timezone    string        `mapstructure:"timezone"`
	CORSOrigin  string        `mapstructure:"cors_origin"`
	WriteLimit  int           `mapstructure:"write_limit"`
	WriteWindow time.Duration `mapstructure:"write_window"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	SSLMode      string `mapstructure:"sslmode"`
	Path         string `mapstructure:"path"`
	LogLevel     string `mapstructure:"log_level"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// SeedConfig 初始化数据配置
type SeedConfig struct {
	Categories []string `mapstructure:"categories"`
	DemoStart  string   `mapstructure:"demo_start"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	// .env 只补充未设置的环境变量
	if err := godotenv.Load(); err == nil {
		slog.Info("已加载 .env 文件")
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}

	// 2. 外部配置文件（可选）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			slog.Warn("无法读取指定配置文件", "path", configPath, "error", err)
		} else {
			slog.Info("已合并外部配置文件", "path", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/expenses")
		externalViper.AddConfigPath("$HOME/.expenses")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				slog.Warn("合并外部配置失败", "error", err)
			} else {
				slog.Info("已合并外部配置文件", "path", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 环境变量覆盖，如 EXPENSES_DATABASE_DRIVER=sqlite
	v.SetEnvPrefix("EXPENSES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("不支持的数据库驱动: %q", c.Database.Driver))
	}
	if !validCharset(c.Database.Charset) {
		errs = append(errs, fmt.Errorf("无效的 database.charset: %q", c.Database.Charset))
	}
	if _, err := c.Server.Location(); err != nil {
		errs = append(errs, fmt.Errorf("无效的时区 %q: %w", c.Server.Timezone, err))
	}
	if c.Server.WriteLimit < 0 {
		errs = append(errs, errors.New("server.write_limit 不能为负数"))
	}
	if c.Server.WriteLimit > 0 && c.Server.WriteWindow <= 0 {
		errs = append(errs, errors.New("server.write_window 必须大于 0"))
	}
	if _, err := c.Seed.DemoStartDate(); err != nil {
		errs = append(errs, fmt.Errorf("无效的 seed.demo_start: %w", err))
	}

	return errors.Join(errs...)
}

// validCharset 字符集名只允许字母、数字和下划线，会拼入 DDL
func validCharset(cs string) bool {
	for _, r := range cs {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			return false
		}
	}
	return true
}

// Location 返回服务器本地日历使用的时区
func (s ServerConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

// DemoStartDate 演示数据起始日期
func (s SeedConfig) DemoStartDate() (time.Time, error) {
	if s.DemoStart == "" {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s.DemoStart)
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	db := GlobalConfig.Database
	target := fmt.Sprintf("%s@%s:%s/%s", db.Username, db.Host, db.Port, db.DBName)
	if db.Driver == "sqlite" {
		target = db.Path
	}
	slog.Info("当前配置",
		"port", GlobalConfig.Server.Port,
		"mode", GlobalConfig.Server.Mode,
		"timezone", GlobalConfig.Server.Timezone,
		"db_driver", db.Driver,
		"db_target", target,
		"email_enabled", GlobalConfig.Email.Enabled,
	)
}
