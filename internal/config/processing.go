package config

import "fmt"

// MaxWorkers bounds the compute fan-out.
const MaxWorkers = 64

// ProcessingConfig configures the compute stage.
type ProcessingConfig struct {
	// Workers classifies accounts concurrently when > 1. Output order is
	// unaffected.
	Workers int `yaml:"workers"`
}

// Validate checks that the worker count is within range.
func (p ProcessingConfig) Validate() error {
	if p.Workers < 1 || p.Workers > MaxWorkers {
		return fmt.Errorf("processing.workers must be between 1 and %d, got %d", MaxWorkers, p.Workers)
	}
	return nil
}
