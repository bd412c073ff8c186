package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear a resume document file",
	Long:  "Replaces a resume document file with an empty document after confirmation.",
	RunE:  runClear,
}

var (
	clearInputFile string
	clearYes       bool
)

// confirmClear asks before discarding data; swapped out in tests.
var confirmClear = func() (bool, error) {
	prompt := promptui.Prompt{
		Label:     "Are you sure you want to clear all data? This action cannot be undone",
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func init() {
	clearCmd.Flags().StringVarP(&clearInputFile, "in", "i", "", "Path to resume document JSON (required)")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")

	_ = clearCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	if _, err := readDocument(clearInputFile); err != nil {
		return err
	}

	confirmed := clearYes
	if !confirmed {
		ok, err := confirmClear()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		confirmed = ok
	}
	if !confirmed {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing cleared.")
		return nil
	}

	model := document.New()
	model.Reset()
	if err := writeDocument(cmd.OutOrStdout(), clearInputFile, model.Snapshot()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All data cleared successfully!")
	return nil
}
