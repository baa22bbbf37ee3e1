// Package main provides the CLI entry point for cpdash.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ukaji3/cpdash-go/internal/config"
	"github.com/ukaji3/cpdash-go/internal/logging"
	"github.com/ukaji3/cpdash-go/internal/server"
	"github.com/ukaji3/cpdash-go/pkg/cpdash"
	"github.com/ukaji3/cpdash-go/pkg/cpdash/chart"
)

const defaultConfigPath = "cpdash.yaml"

var (
	configPath string
	logLevel   string

	dataFile  string
	sheetName string
	mode      string
	host      string
	port      int

	pretty bool

	outDir      string
	imageFormat string
	imageWidth  int
	imageHeight int
)

var (
	cfg *config.Config
	log *slog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cpdash",
		Short: "Counterparty trading dashboard",
		Long: `cpdash loads a sheet of counterparty trading data, rescales it to millions
and serves five bar charts with an enlarge-and-inspect modal.`,
		PersistentPreRunE: setup,
		RunE:              runServe,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Configuration file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Spreadsheet path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "Partitioning mode: named-columns, chunked-by-3")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().StringVar(&host, "host", "", "Listen host (overrides config)")
		c.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the loaded dataset as JSON",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write every chart as a static image",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outDir, "out", "o", "charts", "Output directory")
	renderCmd.Flags().StringVar(&imageFormat, "format", "png", "Image format: png, svg")
	renderCmd.Flags().IntVar(&imageWidth, "width", 1024, "Image width in pixels")
	renderCmd.Flags().IntVar(&imageHeight, "height", 576, "Image height in pixels")

	rootCmd.AddCommand(serveCmd, inspectCmd, renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads .env, the configuration file and flag overrides, then builds
// the logger.
func setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(configPath, !cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if dataFile != "" {
		cfg.Data.File = dataFile
	}
	if sheetName != "" {
		cfg.Data.Sheet = sheetName
	}
	if mode != "" {
		cfg.Data.Mode = mode
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log = logging.NewLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	logging.SetDefault(log)
	return nil
}

// openDashboard loads the configured workbook.
func openDashboard() (*cpdash.Dashboard, error) {
	m, err := cpdash.ParseMode(cfg.Data.Mode)
	if err != nil {
		return nil, err
	}

	opts := cpdash.Options{
		Mode:   m,
		Sheet:  cfg.Data.Sheet,
		Charts: cfg.Charts,
	}

	d, err := cpdash.Open(cfg.Data.File, opts)
	if err != nil {
		return nil, err
	}
	log.Info("dashboard loaded",
		"file", cfg.Data.File,
		"sheet", opts.SheetName(),
		"mode", m,
		"rows", d.Data.Sheet.Len(),
		"columns", len(d.Data.Sheet.Columns),
		"tables", len(d.Data.Tables),
	)
	return d, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	d, err := openDashboard()
	if err != nil {
		log.Error("startup failed", "error", err)
		return err
	}

	srv, err := server.New(d, cfg.Server, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	d, err := openDashboard()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(d.Data); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return nil
}

func runRender(_ *cobra.Command, _ []string) error {
	format, err := chart.ParseFormat(imageFormat)
	if err != nil {
		return err
	}

	d, err := openDashboard()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, e := range d.Registry.Entries() {
		filename := filepath.Join(outDir, fmt.Sprintf("%s.%s", e.Spec.ID, format))
		if err := writeChart(filename, e.Spec, format); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
		log.Info("chart written", "chart", e.Spec.ID, "path", filename)
	}

	return nil
}
