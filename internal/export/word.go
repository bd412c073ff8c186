package export

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// utf8BOM prefixes the Word payload so the file opens as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const wordStylesheet = `
body { font-family: Arial, sans-serif; margin: 20px; }
h1 { font-size: 24px; margin-bottom: 10px; }
h2 { font-size: 18px; margin: 20px 0 10px 0; border-bottom: 1px solid #000; }
.entry { margin-bottom: 15px; }
.entry-title { font-weight: bold; }
.entry-subtitle { color: #666; font-size: 14px; margin: 2px 0 8px 0; }
.skills-display { margin-top: 10px; }
.skill-item { display: inline-block; background: #f0f0f0; padding: 4px 8px; margin: 2px; border-radius: 3px; }
.resume-contact { margin: 10px 0; }
.resume-contact span { margin-right: 15px; }
`

// WordDocument wraps preview markup in an HTML shell that Word opens as a
// document. The result is HTML, not a binary Word file.
func WordDocument(previewHTML string) ([]byte, error) {
	body, err := previewContent(previewHTML)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	buf.WriteString(`<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>`)
	buf.WriteString("\n<head>\n<meta charset='utf-8'>\n<title>Resume</title>\n<style>")
	buf.WriteString(wordStylesheet)
	buf.WriteString("</style>\n</head>\n<body>\n")
	buf.WriteString(body)
	buf.WriteString("\n</body>\n</html>\n")
	return buf.Bytes(), nil
}

// previewContent returns the inner markup of the preview root. Markup
// without a preview root is returned unchanged.
func previewContent(previewHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(previewHTML))
	if err != nil {
		return "", err
	}
	root := doc.Find(".resume-preview").First()
	if root.Length() == 0 {
		return previewHTML, nil
	}
	return root.Html()
}
