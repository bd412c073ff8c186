package main

import (
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write the sample resume document",
	RunE:  runSample,
}

var sampleOutputFile string

func init() {
	sampleCmd.Flags().StringVarP(&sampleOutputFile, "out", "o", "", "Output path (defaults to stdout)")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	model := document.New()
	model.ReplaceAll(document.Sample())
	return writeDocument(cmd.OutOrStdout(), sampleOutputFile, model.Snapshot())
}
