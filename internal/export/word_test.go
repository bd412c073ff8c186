package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordDocument_Shell(t *testing.T) {
	markup, err := rendering.Render(document.Sample(), "classic")
	require.NoError(t, err)

	data, err := WordDocument(markup)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "missing BOM")
	body := string(data[3:])
	assert.Contains(t, body, "xmlns:o='urn:schemas-microsoft-com:office:office'")
	assert.Contains(t, body, "xmlns:w='urn:schemas-microsoft-com:office:word'")
	assert.Contains(t, body, "xmlns='http://www.w3.org/TR/REC-html40'")
	assert.Contains(t, body, "<meta charset='utf-8'>")
	assert.Contains(t, body, "<title>Resume</title>")
}

func TestWordDocument_UsesPreviewInnerMarkup(t *testing.T) {
	markup, err := rendering.Render(document.Sample(), "modern")
	require.NoError(t, err)

	data, err := WordDocument(markup)
	require.NoError(t, err)
	body := string(data[3:])

	assert.NotContains(t, body, "modern-template")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, "John Smith", doc.Find("body .resume-header .resume-name").Text())
	assert.Equal(t, 6, doc.Find("body .skill-item").Length())
}

func TestWordDocument_PlainMarkupPassesThrough(t *testing.T) {
	data, err := WordDocument("<p>hello</p>")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<body>\n<p>hello</p>\n</body>")
}

func TestPrintPage(t *testing.T) {
	page := PrintPage("A <B>.html", `<div class="resume-preview classic-template"></div>`, ".x{}")

	assert.Contains(t, page, "<title>A &lt;B&gt;.html</title>")
	assert.Contains(t, page, "window.print()")
	assert.Contains(t, page, ".x{}")
	assert.NotContains(t, StandalonePage("t", "", ""), "window.print()")
}
