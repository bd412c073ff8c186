package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/formsync"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume document against the schema and required fields",
	RunE:  runValidate,
}

var (
	validateInputFile  string
	validateSchemaFile string
	validateVerbose    bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to resume document JSON (required)")
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Validate against this schema file instead of the built-in one")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print a summary of the document")

	_ = validateCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if validateSchemaFile != "" {
		if err := schemas.ValidateJSON(validateSchemaFile, validateInputFile); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s matches %s\n", validateInputFile, validateSchemaFile)
		return nil
	}

	data, err := os.ReadFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := schemas.DecodeDocument(data)
	if err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprint(out, verr.Error())
			return errors.New("document does not match schema")
		}
		return err
	}

	model := document.New()
	model.ReplaceAll(doc)
	res := formsync.New(model).Submit()
	if validateVerbose {
		printer := observability.NewPrinter(out)
		snapshot := model.Snapshot()
		printer.PrintDocument(&snapshot)
		printer.PrintMissingFields(res.Missing)
	}
	if !res.Valid {
		fmt.Fprintf(out, "missing required fields: %s\n", strings.Join(res.Missing, ", "))
		return errors.New("please fill in all required fields")
	}

	fmt.Fprintln(out, "document is valid")
	return nil
}
