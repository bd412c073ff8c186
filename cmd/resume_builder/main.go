// Package main provides the resume_builder CLI: the editor server plus offline render tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configFile string
	debugLogs  bool
	jsonLogs   bool

	// set by loadConfig before any subcommand runs
	cfg *config.Config
	log *zap.Logger
	v   = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder editor server and export tools",
	Long: "Resume Builder edits a single resume through a live-preview web form and exports it " +
		"as a printable page, a Word document or a PDF.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a YAML, JSON or TOML config file")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Log as JSON")

	_ = v.BindPFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("json-logs"))
}

func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logger.New(loaded.Log.JSON, loaded.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg = loaded
	log = l
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if log != nil {
		_ = log.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
