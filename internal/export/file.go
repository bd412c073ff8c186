package export

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Format identifies an export target.
type Format string

// Supported formats.
const (
	FormatPDF   Format = "pdf"
	FormatWord  Format = "doc"
	FormatPrint Format = "print"
	FormatHTML  Format = "html"
)

// Content types of exported files.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeWord = "application/msword"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// FallbackFileName is used when the document has no name.
const FallbackFileName = "Resume"

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatWord, FormatPrint, FormatHTML:
		return f, nil
	}
	return "", &UnsupportedFormatError{Format: s}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPDF:
		return ".pdf"
	case FormatWord:
		return ".doc"
	default:
		return ".html"
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return ContentTypePDF
	case FormatWord:
		return ContentTypeWord
	default:
		return ContentTypeHTML
	}
}

// File is an exported artifact ready to be downloaded or written.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileName names an export after the person, falling back to "Resume".
// Path separators and control characters in the name become underscores,
// so the result is always a bare file name.
func FileName(doc types.ResumeDocument, f Format) string {
	name := strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r < 0x20 || r == 0x7f {
			return '_'
		}
		return r
	}, doc.Personal.Name))
	if name == "" || name == "." || name == ".." {
		name = FallbackFileName
	}
	return name + f.Extension()
}
