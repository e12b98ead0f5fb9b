package common

import (
	"testing"

	"go.uber.org/zap"
)

func TestLogConfigLevel(t *testing.T) {
	if lvl := (LogConfig{}).ZapLevel(); lvl != zap.InfoLevel {
		t.Fatalf("expected info by default, got %s", lvl)
	}
	if lvl := (LogConfig{Level: "debug"}).ZapLevel(); lvl != zap.DebugLevel {
		t.Fatalf("expected debug, got %s", lvl)
	}
	if lvl := (LogConfig{Level: "loud"}).ZapLevel(); lvl != zap.InfoLevel {
		t.Fatalf("bad level should fall back to info, got %s", lvl)
	}
}

func TestConfigureZapWithFile(t *testing.T) {
	dir := t.TempDir()
	logger, done := ConfigureZapWithFile(LogConfig{Directory: dir, Filename: "calc.log", MaxSize: 1})
	logger.Info("hello")
	done()
}

func TestRedisKey(t *testing.T) {
	if k := (RedisConfig{}).Key("feed"); k != "feed" {
		t.Fatalf("unexpected key %s", k)
	}
	if k := (RedisConfig{KeyPrefix: "calc"}).Key("feed"); k != "calc:feed" {
		t.Fatalf("unexpected key %s", k)
	}
}
