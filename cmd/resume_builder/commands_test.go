package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in-process. Flag values persist on the
// package-level commands between runs, so they are reset first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeJSONFile(t *testing.T, doc any) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func readDocFile(t *testing.T, path string) types.ResumeDocument {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc types.ResumeDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestSampleCommand_Stdout(t *testing.T) {
	out, err := execute(t, "sample")
	require.NoError(t, err)

	var doc types.ResumeDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, document.Sample().Personal.Name, doc.Personal.Name)
	assert.NotEmpty(t, doc.Experience)
}

func TestSampleCommand_OutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")

	out, err := execute(t, "sample", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	doc := readDocFile(t, path)
	assert.Equal(t, document.Sample().Summary, doc.Summary)
}

func TestValidateCommand(t *testing.T) {
	t.Run("sample is valid", func(t *testing.T) {
		path := writeJSONFile(t, document.Sample())
		out, err := execute(t, "validate", "--in", path)
		require.NoError(t, err)
		assert.Contains(t, out, "document is valid")
	})

	t.Run("empty document misses required fields", func(t *testing.T) {
		path := writeJSONFile(t, types.NewResumeDocument())
		out, err := execute(t, "validate", "--in", path)
		require.Error(t, err)
		assert.Contains(t, out, "missing required fields")
		assert.Contains(t, out, "name")
	})

	t.Run("unknown property fails schema", func(t *testing.T) {
		path := writeJSONFile(t, map[string]any{"personal": map[string]any{"nickname": "JD"}})
		_, err := execute(t, "validate", "--in", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema")
	})

	t.Run("verbose prints summary", func(t *testing.T) {
		path := writeJSONFile(t, document.Sample())
		out, err := execute(t, "validate", "--in", path, "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "RESUME DOCUMENT")
		assert.Contains(t, out, "ALL REQUIRED FIELDS PRESENT")
	})

	t.Run("missing --in flag", func(t *testing.T) {
		_, err := execute(t, "validate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})
}

func TestRenderCommand_HTML(t *testing.T) {
	in := writeJSONFile(t, document.Sample())
	outPath := filepath.Join(t.TempDir(), "resume.html")

	out, err := execute(t, "render", "--in", in, "--format", "html", "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, outPath)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	dom, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	assert.Contains(t, dom.Text(), document.Sample().Personal.Name)
}

func TestRenderCommand_Word(t *testing.T) {
	in := writeJSONFile(t, document.Sample())
	outPath := filepath.Join(t.TempDir(), "resume.doc")

	out, err := execute(t, "render", "--in", in, "--format", "doc", "--template", "classic", "--out", outPath, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "EXPORT")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), document.Sample().Personal.Email)
}

func TestRenderCommand_Errors(t *testing.T) {
	in := writeJSONFile(t, document.Sample())

	_, err := execute(t, "render", "--in", in, "--format", "rtf")
	assert.Error(t, err)

	_, err = execute(t, "render", "--in", in, "--template", "nope", "--out", filepath.Join(t.TempDir(), "x.html"))
	assert.Error(t, err)

	_, err = execute(t, "render", "--in", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestClearCommand(t *testing.T) {
	t.Run("--yes clears without prompting", func(t *testing.T) {
		path := writeJSONFile(t, document.Sample())
		confirmClear = func() (bool, error) {
			t.Fatal("prompt should not run")
			return false, nil
		}

		out, err := execute(t, "clear", "--in", path, "--yes")
		require.NoError(t, err)
		assert.Contains(t, out, "All data cleared successfully!")

		doc := readDocFile(t, path)
		assert.Empty(t, doc.Personal.Name)
		assert.NotNil(t, doc.Experience)
		assert.Empty(t, doc.Experience)
	})

	t.Run("declined prompt leaves file untouched", func(t *testing.T) {
		path := writeJSONFile(t, document.Sample())
		confirmClear = func() (bool, error) { return false, nil }

		out, err := execute(t, "clear", "--in", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Nothing cleared.")
		assert.Equal(t, document.Sample().Personal.Name, readDocFile(t, path).Personal.Name)
	})

	t.Run("confirmed prompt clears", func(t *testing.T) {
		path := writeJSONFile(t, document.Sample())
		confirmClear = func() (bool, error) { return true, nil }

		_, err := execute(t, "clear", "--in", path)
		require.NoError(t, err)
		assert.Empty(t, readDocFile(t, path).Summary)
	})
}

func TestRenderCommand_DefaultOutputStaysInWorkingDir(t *testing.T) {
	doc := document.Sample()
	doc.Personal.Name = "../escape/Jane"
	in := writeJSONFile(t, doc)

	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "render", "--in", in, "--format", "html")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".._escape_Jane.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape"))
	assert.True(t, os.IsNotExist(err))
}
