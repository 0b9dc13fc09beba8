package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Server    *Server    `json:"server" yaml:"server"`
	Database  *Database  `json:"database" yaml:"database"`
	Redis     *Redis     `json:"redis" yaml:"redis"`
	RateLimit *RateLimit `json:"rate_limit" yaml:"rate_limit"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New loads the config file and panics when it cannot be used.
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}
	conf.applyDefaults()

	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8000
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	c.Database.applyDefaults()
	if c.RateLimit == nil {
		c.RateLimit = &RateLimit{}
	}
	c.RateLimit.applyDefaults()
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
