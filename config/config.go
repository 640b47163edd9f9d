package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App        *App        `json:"app" yaml:"app"`
	Redis      *Redis      `json:"redis" yaml:"redis"`
	MySQL      *MySQL      `json:"mysql" yaml:"mysql"`
	Jwt        *Jwt        `json:"jwt" yaml:"jwt"`
	Server     *Server     `json:"server" yaml:"server"`
	ShortLink  *ShortLink  `json:"short_link" yaml:"short_link"`
	Pagination *Pagination `json:"pagination" yaml:"pagination"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}
	return conf
}

// Parse 解析 yaml 内容并补齐默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.setDefaults()
	return &conf, nil
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpiresIn == 0 {
		c.Jwt.ExpiresIn = 24 * 3600
	}
	if c.ShortLink == nil {
		c.ShortLink = &ShortLink{}
	}
	if c.Pagination == nil {
		c.Pagination = &Pagination{}
	}
	if c.Pagination.DefaultLimit <= 0 {
		c.Pagination.DefaultLimit = 6
	}
	if c.Pagination.MaxLimit <= 0 {
		c.Pagination.MaxLimit = 100
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
