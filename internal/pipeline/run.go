package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bankocr/internal/classify"
	"bankocr/internal/logging"
)

// Report summarises one pipeline run.
type Report struct {
	RunID    string
	Source   string
	Sink     string
	Tally    classify.Tally
	Written  int
	Duration time.Duration
}

// slowRun is the duration past which a run is logged as a warning.
const slowRun = 5 * time.Second

// SinkOpener opens the persist stage on demand.
type SinkOpener func() (Sink, error)

// Run acquires input from src, computes result lines with p and appends them
// to sink. The sink is closed before returning.
func Run(ctx context.Context, src Source, p *Processor, sink Sink) (Report, error) {
	opened := false
	rep, err := RunTo(ctx, src, p, func() (Sink, error) {
		opened = true
		return sink, nil
	})
	if !opened {
		// RunTo closes the sink only once it has opened it.
		if cerr := sink.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}
	return rep, err
}

// RunTo is Run with a lazily opened sink: the destination is only opened
// once input has been acquired and computed. Writing stops at the first
// failed line so the destination always holds a valid prefix.
func RunTo(ctx context.Context, src Source, p *Processor, open SinkOpener) (rep Report, err error) {
	rep = Report{RunID: uuid.NewString(), Source: src.Name()}
	log := logging.WithRun(logging.CategoryPipeline, rep.RunID).WithField("source", rep.Source)
	timer := logging.StartTimer(logging.CategoryPipeline, "run "+rep.RunID)
	defer func() { rep.Duration = timer.StopWithThreshold(slowRun) }()

	raw, err := src.Read(ctx)
	if err != nil {
		log.Error("acquire %s: %v", src.Name(), err)
		return rep, err
	}
	log.Info("acquired %d bytes from %s", len(raw), src.Name())

	results, err := p.Process(ctx, raw)
	if err != nil {
		return rep, fmt.Errorf("compute: %w", err)
	}
	rep.Tally = classify.Count(results)
	log.Info("computed %s", rep.Tally)
	if rep.Tally.ILL > 0 {
		log.Warn("%d illegible accounts", rep.Tally.ILL)
	}

	sink, err := open()
	if err != nil {
		logging.IOError("open sink: %v", err)
		return rep, err
	}
	rep.Sink = sink.Name()
	log.Debug("opened sink %s", rep.Sink)
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			logging.IOError("close %s: %v", sink.Name(), cerr)
			err = errors.Join(err, cerr)
		}
	}()

	for _, r := range results {
		if err := sink.WriteLine(r.String()); err != nil {
			logging.IOError("persist line %d to %s: %v", rep.Written+1, sink.Name(), err)
			return rep, err
		}
		rep.Written++
	}
	logging.IO("wrote %d lines to %s", rep.Written, sink.Name())
	return rep, nil
}
