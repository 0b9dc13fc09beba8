package config

import "time"

// RateLimit 固定窗口限流, 依赖 redis
type RateLimit struct {
	Enabled       bool `json:"enabled" yaml:"enabled"`
	Requests      int  `json:"requests" yaml:"requests"`
	WindowSeconds int  `json:"window_seconds" yaml:"window_seconds"`
}

func (r *RateLimit) applyDefaults() {
	if r.Requests <= 0 {
		r.Requests = 120
	}
	if r.WindowSeconds <= 0 {
		r.WindowSeconds = 60
	}
}

func (r *RateLimit) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}
