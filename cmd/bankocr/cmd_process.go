package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"bankocr/internal/config"
	"bankocr/internal/pipeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// processCmd runs the three-stage pipeline once.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Decode the input file and append results to the output file",
	Long: `Reads the input file, decodes every account band and appends one
"<account> <status>" line per account to the output file, creating it if needed.

Example:
  bankocr process -i scans/test_account.txt -o output.txt --workers 4`,
	Args: cobra.NoArgs,
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	rep, err := processOnce(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), renderSummary("processed", rep.Tally))
	return nil
}

// processOnce builds the source and sink from c and runs the pipeline.
func processOnce(ctx context.Context, c *config.Config) (pipeline.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	src := openSource(c.Input, os.Stdin)
	open := func() (pipeline.Sink, error) { return openSink(c.Output) }

	rep, err := pipeline.RunTo(ctx, src, &pipeline.Processor{Workers: c.Processing.Workers}, open)
	if err != nil {
		logger.Error("pipeline run failed",
			zap.String("run_id", rep.RunID),
			zap.Int("written", rep.Written),
			zap.Error(err))
		return rep, err
	}
	logger.Info("pipeline run complete",
		zap.String("run_id", rep.RunID),
		zap.String("source", rep.Source),
		zap.String("sink", rep.Sink),
		zap.Int("ok", rep.Tally.OK),
		zap.Int("err", rep.Tally.ERR),
		zap.Int("ill", rep.Tally.ILL),
		zap.Duration("duration", rep.Duration))
	return rep, nil
}

// openSource maps '-' to stdin and anything else to a file.
func openSource(path string, stdin io.Reader) pipeline.Source {
	if path == config.StdStream {
		return pipeline.ReaderSource{R: stdin, Label: "stdin"}
	}
	return pipeline.FileSource{Path: path}
}

func openSink(path string) (pipeline.Sink, error) {
	if path == config.StdStream {
		return pipeline.WriterSink{W: os.Stdout, Label: "stdout"}, nil
	}
	return pipeline.OpenFileSink(path)
}
