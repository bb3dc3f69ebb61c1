package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bjaus/rubriclist"
	"github.com/bjaus/rubriclist/internal/config"
	"github.com/bjaus/rubriclist/internal/logger"
	"github.com/bjaus/rubriclist/render"
)

var (
	configFile string
	envFile    string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rubriclist",
		Short:        "List the rubrics of a Moodle site",
		Long:         "rubriclist runs the configured rubric query and writes the listing as a table, an HTML page, or a plain text download.",
		SilenceUsage: true,
		RunE:         runList,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (or CONFIG_FILE)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file loaded before the config")
	cmd.Flags().String("format", "", "Output format: "+joinFormats())
	cmd.Flags().String("lang", "", "Language of labels and dates")
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	cmd.AddCommand(formatsCmd())
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFiles(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env file: %v\n", err)
		return err
	}
	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}

	cfg, err := config.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return err
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		return err
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := NewApp(cfg, log)
	if err := app.Initialize(ctx); err != nil {
		log.Errorw("Failed to initialize", "error", err)
		return err
	}
	defer app.Close()

	out, closeOut, err := openOutput(cfg.Output.Path, cmd.OutOrStdout())
	if err != nil {
		log.Errorw("Failed to open output", "path", cfg.Output.Path, "error", err)
		return err
	}
	if err := runResult(log, app.Run(ctx, out)); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}

// runResult logs how a listing run ended. An interrupted run still fails so
// a partial download is never reported as complete.
func runResult(log logger.Logger, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warnw("Listing interrupted, output is incomplete", "error", err)
	default:
		log.Errorw("Listing failed", "error", err)
	}
	return err
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and languages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			langs, err := rubriclist.Languages()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, f := range render.Formats() {
				mode := "download"
				if !f.Exporting() {
					mode = "interactive"
				}
				fmt.Fprintf(w, "format\t%s\t%s\n", f, mode)
			}
			for _, l := range langs {
				fmt.Fprintf(w, "lang\t%s\n", l)
			}
			return nil
		},
	}
}

func joinFormats() string {
	fs := render.Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
