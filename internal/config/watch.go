package config

import "time"

// WatchConfig configures input file watching.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// GetDebounce returns the debounce window as a duration.
func (w WatchConfig) GetDebounce() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}
