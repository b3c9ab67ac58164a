package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/load-velocity-cli/internal/adapters/jsonl"
	summaryrender "github.com/bnema/load-velocity-cli/internal/adapters/render/summary"
	tomlreport "github.com/bnema/load-velocity-cli/internal/adapters/report/toml"
	"github.com/bnema/load-velocity-cli/internal/application"
	"github.com/spf13/cobra"
)

func newProcessCmd(app *app) *cobra.Command {
	var inputPath string
	var outputPath string
	var onMalformed string
	var workers int
	var showSummary bool
	var reportPath string

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Evaluate a file of load attempts and write decisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd, app, processOptions{
				inputPath:   inputPath,
				outputPath:  outputPath,
				onMalformed: onMalformed,
				workers:     workers,
				showSummary: showSummary,
				reportPath:  reportPath,
			})
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the attempt records file (one JSON record per line)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path the decision records will be written to")
	cmd.Flags().StringVar(&onMalformed, "on-malformed", app.cfg.GetString(onMalformedKey), "Policy for unparsable lines: abort or skip")
	cmd.Flags().IntVar(&workers, "workers", app.cfg.GetInt(workersKey), "Evaluation workers; attempts are sharded by customer")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "Print a run summary after processing")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a TOML run report to this path")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

type processOptions struct {
	inputPath   string
	outputPath  string
	onMalformed string
	workers     int
	showSummary bool
	reportPath  string
}

func runProcess(cmd *cobra.Command, app *app, opts processOptions) error {
	policy, err := application.ParseMalformedPolicy(opts.onMalformed)
	if err != nil {
		return err
	}

	in, err := os.Open(opts.inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(opts.outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	summary, err := evaluateStream(jsonl.NewReader(in), jsonl.NewWriter(out), policy, opts.workers)
	if err != nil {
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if opts.reportPath != "" {
		if err := tomlreport.Write(opts.reportPath, summary, app.now()); err != nil {
			return fmt.Errorf("write run report: %w", err)
		}
	}

	if opts.showSummary {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), summaryrender.Render(summary)); err != nil {
			return err
		}
	}

	return nil
}

func evaluateStream(reader *jsonl.Reader, writer *jsonl.Writer, policy application.MalformedPolicy, workers int) (application.Summary, error) {
	var summary application.Summary

	if workers > 1 {
		attempts, malformed, err := application.Collect(reader, policy)
		if err != nil {
			return summary, err
		}

		summary, err = application.RunSharded(attempts, writer, workers)
		if err != nil {
			return summary, err
		}
		summary.Malformed = malformed
	} else {
		var err error
		summary, err = application.NewEvaluator().Run(reader, writer, policy)
		if err != nil {
			return summary, err
		}
	}

	return summary, writer.Flush()
}
