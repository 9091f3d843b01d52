package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Payment PaymentConfig `yaml:"payment"`
	Game    GameConfig    `yaml:"game"`
}

// ServerConfig configures the HTTP/WebSocket listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig configures the credential/balance store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// PaymentConfig configures the charge-intent collaborator.
type PaymentConfig struct {
	ProviderURL string `yaml:"provider_url"` // empty disables payments
}

// GameConfig holds game pacing knobs.
type GameConfig struct {
	BotThinkDelayMs int `yaml:"bot_think_delay_ms"` // bot "thinking" latency
	RestartDelaySec int `yaml:"restart_delay_sec"`  // pause before auto-restart
	ClickWindowSec  int `yaml:"click_window_sec"`   // click-race open window
	ReflexTimeSec   int `yaml:"reflex_time_sec"`    // reflex game countdown
	TickRate        int `yaml:"tick_rate"`          // continuous game ticks/sec
}

// BotThinkDelay returns the bot decision latency.
func (c *GameConfig) BotThinkDelay() time.Duration {
	return time.Duration(c.BotThinkDelayMs) * time.Millisecond
}

// RestartDelay returns the pause between a round ending and the next
// auto-started round.
func (c *GameConfig) RestartDelay() time.Duration {
	return time.Duration(c.RestartDelaySec) * time.Second
}

// ClickWindow returns the click-race open window duration.
func (c *GameConfig) ClickWindow() time.Duration {
	return time.Duration(c.ClickWindowSec) * time.Second
}

// ReflexTime returns the reflex game play window.
func (c *GameConfig) ReflexTime() time.Duration {
	return time.Duration(c.ReflexTimeSec) * time.Second
}

// TickInterval returns the continuous-game tick interval.
func (c *GameConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Load reads and parses a config file, applying defaults for zero values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.BotThinkDelayMs == 0 {
		cfg.Game.BotThinkDelayMs = 1500
	}
	if cfg.Game.RestartDelaySec == 0 {
		cfg.Game.RestartDelaySec = 3
	}
	if cfg.Game.ClickWindowSec == 0 {
		cfg.Game.ClickWindowSec = 10
	}
	if cfg.Game.ReflexTimeSec == 0 {
		cfg.Game.ReflexTimeSec = 30
	}
	if cfg.Game.TickRate == 0 {
		cfg.Game.TickRate = 60
	}
}
