package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/workspace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor server",
	Long:  `Start an HTTP server that serves the resume editor with live preview and exports.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("template", "", "Initial template (classic, modern, minimal, professional)")
	serveCmd.Flags().String("chrome", "", "Path to the Chrome/Chromium binary used for PDF export")
	_ = v.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	_ = v.BindPFlag("template", serveCmd.Flags().Lookup("template"))
	_ = v.BindPFlag("chrome_path", serveCmd.Flags().Lookup("chrome"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ws, err := newWorkspace()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		ExportTimeout: cfg.ExportTimeout,
		RateLimit:     cfg.RateLimit,
	}, ws, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoSave.Enabled {
		ws.StartAutoSave(ctx, cfg.AutoSave.Interval, cfg.AutoSave.Threshold)
	}

	log.Info("resume builder ready",
		zap.Int("port", cfg.Port),
		zap.String("template", ws.Template()),
		zap.Bool("autosave", cfg.AutoSave.Enabled),
	)
	return srv.Start(ctx)
}

func newWorkspace() (*workspace.Workspace, error) {
	return workspace.New(workspace.Options{
		Template:        cfg.Template,
		NotificationTTL: cfg.NotificationTTL,
		PDF:             cfg.PDF,
		Renderer:        export.NewChromeRenderer(cfg.ChromePath, cfg.ExportTimeout),
		Logger:          log,
	})
}
