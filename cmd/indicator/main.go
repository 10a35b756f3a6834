package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/datasource"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/pipeline"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/internal/writer"
	"github.com/rxtech-lab/argo-indicators/pkg/indicator"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// runAction loads the config, streams the CSV bars through the configured
// indicators and writes one row per bar.
func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
	}

	if output := cmd.String("output"); output != "" {
		cfg.Output.Path = output
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	source := datasource.NewCSVSource(cmd.String("data"))

	count, err := source.Count()
	if err != nil {
		return err
	}

	bar := progressbar.DefaultSilent(int64(count))
	if !cmd.Bool("quiet") {
		bar = progressbar.NewOptions(count,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(fmt.Sprintf("Computing %d indicators", len(cfg.Indicators))),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	registry := prometheus.NewRegistry()

	metrics, err := pipeline.NewMetrics(registry)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, indicator.NewRegistry(), log,
		pipeline.WithProgress(func() { _ = bar.Add(1) }),
		pipeline.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	out, err := writer.New(cfg.Output)
	if err != nil {
		return err
	}

	stats, err := p.Run(ctx, source, out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		log.Error("pipeline failed", zap.String("run_id", p.RunID()), zap.Error(err))

		if cfg.Output.Path != "" {
			_ = os.Remove(cfg.Output.Path)
		}

		return err
	}

	_ = bar.Finish()

	if path := cmd.String("metrics-file"); path != "" {
		if err := prometheus.WriteToTextfile(path, registry); err != nil {
			return err
		}
	}

	if !cmd.Bool("quiet") {
		fmt.Fprintln(cmd.Root().ErrWriter, renderSummary(stats, p.Columns()))
	}

	return nil
}

// schemaAction prints the JSON schema of the config file, or writes it to --output.
func schemaAction(_ context.Context, cmd *cli.Command) error {
	schema, err := config.Schema()
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		return os.WriteFile(path, []byte(schema+"\n"), 0644)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, schema)

	return err
}

func versionAction(_ context.Context, cmd *cli.Command) error {
	_, err := fmt.Fprintln(cmd.Root().Writer, version.GetVersion())
	return err
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "indicator",
		Usage: "Compute streaming technical indicators over OHLCV bars",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run the configured indicators over a CSV bar file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the pipeline `YAML` config",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the bar `CSV` (time,symbol,open,high,low,close,volume)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file, overrides output.path from the config",
					},
					&cli.StringFlag{
						Name:  "log-level",
						Usage: "Log level (debug, info, warn, error), overrides log_level from the config",
					},
					&cli.StringFlag{
						Name:  "metrics-file",
						Usage: "Write run counters in the Prometheus text format to this `FILE`",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Hide the progress bar and summary",
					},
				},
				Action: runAction,
			},
			{
				Name:  "schema",
				Usage: "Print the JSON schema of the pipeline config",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the schema to this file instead of stdout",
					},
				},
				Action: schemaAction,
			},
			{
				Name:   "version",
				Usage:  "Print the engine version",
				Action: versionAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
