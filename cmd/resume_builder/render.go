package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume document to HTML, Word, PDF or a print page",
	Long:  "Renders a resume document JSON file through the preview renderer and writes the requested export.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderFormat     string
	renderTemplate   string
	renderOutputFile string
	renderVerbose    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to resume document JSON (required)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", string(export.FormatHTML), "Output format: html, doc, pdf or print")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template name (defaults to the configured template)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Output path (defaults to the person's name plus extension)")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a summary of the document and export")

	_ = renderCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(renderFormat)
	if err != nil {
		return err
	}

	doc, err := readDocument(renderInputFile)
	if err != nil {
		return err
	}

	// ids are assigned by the model, not taken from the file
	model := document.New()
	model.ReplaceAll(doc)
	snapshot, rev := model.SnapshotAt()

	tmpl := renderTemplate
	if tmpl == "" {
		tmpl = cfg.Template
	}

	svc := export.NewService(export.NewChromeRenderer(cfg.ChromePath, cfg.ExportTimeout), cfg.PDF, nil, log)
	file, err := svc.Build(cmd.Context(), export.Request{
		Format:   format,
		Document: snapshot,
		Revision: rev,
		Template: tmpl,
	})
	if err != nil {
		return err
	}

	out := renderOutputFile
	if out == "" {
		out = file.Name
	}
	if err := os.WriteFile(out, file.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info("rendered resume",
		zap.String("format", string(format)),
		zap.String("template", tmpl),
		zap.String("out", out),
		zap.Int("bytes", len(file.Data)),
	)
	if renderVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintDocument(&snapshot)
		printer.PrintExport(out, string(format), tmpl, len(file.Data))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
	return nil
}
