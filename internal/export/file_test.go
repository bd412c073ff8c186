package export

import (
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	doc := types.NewResumeDocument()
	assert.Equal(t, "Resume.pdf", FileName(doc, FormatPDF))
	assert.Equal(t, "Resume.doc", FileName(doc, FormatWord))

	doc.Personal.Name = "John Smith"
	assert.Equal(t, "John Smith.pdf", FileName(doc, FormatPDF))
	assert.Equal(t, "John Smith.doc", FileName(doc, FormatWord))
	assert.Equal(t, "John Smith.html", FileName(doc, FormatPrint))
}

func TestFileName_IsAlwaysBareName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "A/B", want: "A_B.pdf"},
		{name: "../x", want: ".._x.pdf"},
		{name: `..\..\win`, want: ".._.._win.pdf"},
		{name: "tab\there", want: "tab_here.pdf"},
		{name: "..", want: "Resume.pdf"},
		{name: "   ", want: "Resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := types.NewResumeDocument()
			doc.Personal.Name = tt.name
			got := FileName(doc, FormatPDF)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, filepath.Base(got))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("docx")
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, "application/msword", FormatWord.ContentType())
	assert.Equal(t, ContentTypeHTML, FormatPrint.ContentType())
}

func TestDefaultPDFOptions(t *testing.T) {
	opts := DefaultPDFOptions()

	require.NoError(t, opts.Validate())
	assert.Equal(t, 10.0, opts.MarginMM)
	assert.Equal(t, 0.98, opts.ImageQuality)
	assert.Equal(t, 2.0, opts.Scale)
	assert.Equal(t, "a4", opts.Format)
	assert.Equal(t, "portrait", opts.Orientation)

	w, h := opts.pageSize()
	assert.InDelta(t, 8.27, w, 0.01)
	assert.InDelta(t, 11.69, h, 0.01)
}

func TestPDFOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PDFOptions)
	}{
		{name: "negative margin", mutate: func(o *PDFOptions) { o.MarginMM = -1 }},
		{name: "zero quality", mutate: func(o *PDFOptions) { o.ImageQuality = 0 }},
		{name: "huge scale", mutate: func(o *PDFOptions) { o.Scale = 8 }},
		{name: "letter", mutate: func(o *PDFOptions) { o.Format = "letter" }},
		{name: "sideways", mutate: func(o *PDFOptions) { o.Orientation = "sideways" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultPDFOptions()
			tt.mutate(&opts)
			assert.Error(t, opts.Validate())
		})
	}
}
