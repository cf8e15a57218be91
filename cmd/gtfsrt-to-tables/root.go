package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/config"
	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/formatter"
	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/gtfsrt"
	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/internal/logging"
	"github.com/theoremus-urban-solutions/gtfsrt-to-tables/snapshot"
)

const version = "0.1.0"

type options struct {
	configPath string
	format     string
	maxRows    int
	logLevel   string
	exportDir  string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "gtfsrt-to-tables",
		Short: "Flatten a GTFS-Realtime snapshot into tables",
		Long: `gtfsrt-to-tables downloads the agency's feeds, trip updates, vehicle
positions and vehicle dictionary in parallel, flattens each into a table and
prints the tables together with the mean vehicle speed and phase timings.

A feed that fails to decode is reported as a one-row "error" table; any
download failure or a malformed vehicle dictionary aborts the run.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, opts)
			if err := config.Validate(cfg); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file (defaults reproduce the ZTM Poznań feed)")
	f.StringVar(&opts.format, "format", "", "output format: text|json")
	f.IntVar(&opts.maxRows, "max-rows", 0, "rows shown per table in text output, 0 = all")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")
	f.StringVar(&opts.exportDir, "export-dir", "", "write every table as CSV into this directory")
	return cmd
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.AppConfig, opts options) {
	if cmd.Flags().Changed("format") {
		cfg.Report.Format = opts.format
	}
	if cmd.Flags().Changed("max-rows") {
		cfg.Report.MaxRows = opts.maxRows
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if cmd.Flags().Changed("export-dir") {
		cfg.Report.ExportDir = opts.exportDir
	}
}

func run(ctx context.Context, cfg config.AppConfig, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logCfg := logging.DefaultConfig()
	logCfg.Console = stderr
	logCfg.Level = cfg.Logging.Level
	logCfg.FilePath = cfg.Logging.File
	logger := logging.New(logCfg)

	client := gtfsrt.NewClient(
		gtfsrt.WithParallelism(cfg.Fetch.Parallelism),
		gtfsrt.WithUserAgent(cfg.Fetch.UserAgent),
		gtfsrt.WithLogger(logger),
	)
	runner := snapshot.NewRunner(client, logger, cfg.Source.Comma())

	snap, err := runner.Run(ctx, cfg.ResourceURLs())
	if err != nil {
		return err
	}
	report := snap.Report()

	if cfg.Report.ExportDir != "" {
		if err := formatter.ExportCSV(cfg.Report.ExportDir, report); err != nil {
			return err
		}
		logger.Info().Str("dir", cfg.Report.ExportDir).Msg("exported tables")
	}

	switch cfg.Report.Format {
	case "json":
		return formatter.WriteJSON(stdout, report)
	case "", "text":
		return formatter.WriteText(stdout, report, cfg.Report.MaxRows)
	}
	return fmt.Errorf("unknown format %q", cfg.Report.Format)
}
