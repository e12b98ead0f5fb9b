package calcserver

import (
	"time"

	"github.com/onemorebsmith/rollercoin-calc/src/common"
)

type ServerConfig struct {
	common.CommonConfig `yaml:",inline"`

	ListenPort string `yaml:"listen_port"`
	// optional yaml league table replacing the built-in one
	LeagueFile     string        `yaml:"league_file"`
	FeedCooldown   time.Duration `yaml:"feed_cooldown"`
	SnapshotsKept  uint64        `yaml:"snapshots_kept"`
	PruneInterval  time.Duration `yaml:"prune_interval"`
	MaxRequestSize int64         `yaml:"max_request_size"`
}

func (c ServerConfig) withDefaults() ServerConfig {
	if c.ListenPort == "" {
		c.ListenPort = ":8080"
	}
	if c.FeedCooldown <= 0 {
		c.FeedCooldown = common.DefaultFeedCooldown
	}
	if c.SnapshotsKept == 0 {
		c.SnapshotsKept = 100
	}
	if c.PruneInterval <= 0 {
		c.PruneInterval = time.Hour
	}
	if c.MaxRequestSize <= 0 {
		c.MaxRequestSize = 1 << 20
	}
	return c
}
