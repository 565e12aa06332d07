package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink persists output lines. Each WriteLine call is independent, so a
// failure part way through leaves the lines already written intact.
type Sink interface {
	WriteLine(line string) error
	Close() error
	Name() string
}

// FileSink appends lines to a file, creating it (and its directory) if absent.
type FileSink struct {
	path string
	file *os.File
}

// OpenFileSink opens path for appending.
func OpenFileSink(path string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output %s: %w", path, err)
	}
	return &FileSink{path: path, file: f}, nil
}

func (s *FileSink) Name() string { return s.path }

func (s *FileSink) WriteLine(line string) error {
	if _, err := s.file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileSink) Close() error {
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, err)
	}
	return nil
}

// WriterSink writes lines to an io.Writer such as stdout. Close is a no-op.
type WriterSink struct {
	W     io.Writer
	Label string
}

func (s WriterSink) Name() string {
	if s.Label == "" {
		return "writer"
	}
	return s.Label
}

func (s WriterSink) WriteLine(line string) error {
	_, err := io.WriteString(s.W, line+"\n")
	return err
}

func (s WriterSink) Close() error { return nil }

// MemorySink collects lines in memory.
type MemorySink struct {
	mu    sync.Mutex
	lines []string
}

func (s *MemorySink) Name() string { return "memory" }

func (s *MemorySink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	return nil
}

func (s *MemorySink) Close() error { return nil }

// Lines returns a copy of the collected lines.
func (s *MemorySink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}
