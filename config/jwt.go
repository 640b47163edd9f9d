package config

type Jwt struct {
	Secret    string `json:"secret" yaml:"secret"`
	ExpiresIn int64  `json:"expires_in" yaml:"expires_in"` // 秒
}
