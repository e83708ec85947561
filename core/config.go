package core

import "encoding/json"

// Config is the JSON-tagged configuration accepted by Init.
type Config struct {
	CounterBits     uint8 `json:"counter_bits"`
	EnableWallClock bool  `json:"enable_wall_clock"`
	InitialSeconds  int64 `json:"initial_seconds"`
	TZOffsetSeconds int32 `json:"tz_offset_seconds"`
	DebugEnabled    bool  `json:"debug_enabled"`
}

// LoadConfig parses JSON configuration and applies defaults for any
// zero-valued field that must not stay zero.
func LoadConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.CounterBits == 0 {
		cfg.CounterBits = 32
	}
}
