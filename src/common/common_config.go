package common

import "time"

type CommonConfig struct {
	PromPort        string      `yaml:"prom_port"`
	HealthCheckPort string      `yaml:"health_check_port"`
	PostgresConfig  string      `yaml:"postgres"`
	RedisConfig     RedisConfig `yaml:"redis"`
	Log             LogConfig   `yaml:"log"`
}

type RedisConfig struct {
	Address   string `yaml:"address"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// Key namespaces a redis key with the configured prefix.
func (r RedisConfig) Key(name string) string {
	if r.KeyPrefix == "" {
		return name
	}
	return r.KeyPrefix + ":" + name
}

// DefaultFeedCooldown is the minimum gap between league feed refreshes.
const DefaultFeedCooldown = 15 * time.Second
