package export

import (
	"html"
	"strings"
)

const printScript = `<script>window.addEventListener('load', function () { window.print(); });</script>`

// StandalonePage wraps preview markup and its stylesheet in a complete HTML
// document, used as the PDF source.
func StandalonePage(title, previewHTML, css string) string {
	return renderPage(title, previewHTML, css, false)
}

// PrintPage is StandalonePage plus a script that opens the print dialog
// once the page has loaded.
func PrintPage(title, previewHTML, css string) string {
	return renderPage(title, previewHTML, css, true)
}

func renderPage(title, previewHTML, css string, autoPrint bool) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>")
	sb.WriteString(html.EscapeString(title))
	sb.WriteString("</title>\n<style>")
	sb.WriteString(css)
	sb.WriteString("\n@media print { body { margin: 0; } .resume-preview { box-shadow: none; } }")
	sb.WriteString("</style>\n</head>\n<body>\n")
	sb.WriteString(previewHTML)
	if autoPrint {
		sb.WriteString("\n")
		sb.WriteString(printScript)
	}
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}
