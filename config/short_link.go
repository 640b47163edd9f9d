package config

import "strings"

type ShortLink struct {
	// 生成短链时拼接的访问前缀，如 https://foodgram.example.com
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// Link 拼接完整短链
func (s *ShortLink) Link(host, code string) string {
	base := strings.TrimRight(s.BaseURL, "/")
	if base == "" {
		base = host
	}
	return base + "/s/" + code
}

type Pagination struct {
	DefaultLimit int `json:"default_limit" yaml:"default_limit"`
	MaxLimit     int `json:"max_limit" yaml:"max_limit"`
}
