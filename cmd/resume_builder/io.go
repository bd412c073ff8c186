package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// readDocument loads and schema-validates a resume document file.
func readDocument(path string) (types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := schemas.DecodeDocument(data)
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("invalid document %s: %w", path, err)
	}
	return doc, nil
}

// writeDocument writes doc as indented JSON to path, or to stdout when path is empty.
func writeDocument(stdout io.Writer, path string, doc types.ResumeDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
