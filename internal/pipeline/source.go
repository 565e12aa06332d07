package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoInput is returned when a Source has nothing to read from.
var ErrNoInput = errors.New("no input source")

// Source acquires the raw input text.
type Source interface {
	Read(ctx context.Context) (string, error)
	Name() string
}

// FileSource reads the whole input file.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Read(ctx context.Context) (string, error) {
	if s.Path == "" {
		return "", ErrNoInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", s.Path, err)
	}
	return string(data), nil
}

// ReaderSource drains an io.Reader, typically stdin.
type ReaderSource struct {
	R     io.Reader
	Label string
}

func (s ReaderSource) Name() string {
	if s.Label == "" {
		return "reader"
	}
	return s.Label
}

func (s ReaderSource) Read(ctx context.Context) (string, error) {
	if s.R == nil {
		return "", ErrNoInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(s.R)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.Name(), err)
	}
	return string(data), nil
}

// StringSource serves an already materialised text blob.
type StringSource string

func (s StringSource) Name() string { return "memory" }

func (s StringSource) Read(ctx context.Context) (string, error) {
	return string(s), ctx.Err()
}
