package config

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	// 成员集合缓存过期时间（秒），0 表示使用默认值
	MembershipTTL int `json:"membership_ttl" yaml:"membership_ttl"`
}
