package config

import (
	"os"
	"time"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Settings are the knobs read from the environment at startup.
type Settings struct {
	ShipImage    string // 飞船图片路径，为空时使用内置图片
	InvaderImage string
	KillSound    string // wav 或 mp3
	LogLevel     string
	LogFile      string // 终端模式下日志写到文件，避免打乱画面
	SSHHost      string
	SSHPort      string
	SSHHostKey   string
}

func LoadSettings() Settings {
	return Settings{
		ShipImage:    GetEnv("INVADERS_SHIP_IMAGE", ""),
		InvaderImage: GetEnv("INVADERS_INVADER_IMAGE", ""),
		KillSound:    GetEnv("INVADERS_KILL_SOUND", ""),
		LogLevel:     GetEnv("INVADERS_LOG_LEVEL", "info"),
		LogFile:      GetEnv("INVADERS_LOG_FILE", ""),
		SSHHost:      GetEnv("INVADERS_SSH_HOST", "::"),
		SSHPort:      GetEnv("INVADERS_SSH_PORT", "2222"),
		SSHHostKey:   GetEnv("INVADERS_SSH_HOST_KEY", ".ssh/invaders_ed25519"),
	}
}

func SpawnPeriod() time.Duration {
	return SpawnPeriodMS * time.Millisecond
}
