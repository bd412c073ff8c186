package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	mmPerInch    = 25.4
	cssPxPerInch = 96

	// A4 in inches
	a4WidthIn  = 210 / mmPerInch
	a4HeightIn = 297 / mmPerInch
)

// PDFOptions configures PDF export.
type PDFOptions struct {
	MarginMM     float64 `mapstructure:"margin_mm" json:"margin_mm"`
	ImageQuality float64 `mapstructure:"image_quality" json:"image_quality"`
	Scale        float64 `mapstructure:"scale" json:"scale"`
	Format       string  `mapstructure:"format" json:"format"`
	Orientation  string  `mapstructure:"orientation" json:"orientation"`
	// Raster captures the page as a JPEG at Scale and ImageQuality and lays
	// the image onto PDF pages. Otherwise Chrome prints the page as vector text.
	Raster bool `mapstructure:"raster" json:"raster"`
}

// DefaultPDFOptions returns A4 portrait, 10 mm margins, 2x raster scale,
// JPEG quality 0.98.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		MarginMM:     10,
		ImageQuality: 0.98,
		Scale:        2,
		Format:       "a4",
		Orientation:  "portrait",
		Raster:       true,
	}
}

// Validate checks option ranges.
func (o PDFOptions) Validate() error {
	if o.MarginMM < 0 || o.MarginMM > 50 {
		return fmt.Errorf("pdf margin must be between 0 and 50 mm, got %v", o.MarginMM)
	}
	if o.ImageQuality <= 0 || o.ImageQuality > 1 {
		return fmt.Errorf("pdf image quality must be in (0, 1], got %v", o.ImageQuality)
	}
	if o.Scale <= 0 || o.Scale > 4 {
		return fmt.Errorf("pdf scale must be in (0, 4], got %v", o.Scale)
	}
	if o.Format != "a4" {
		return fmt.Errorf("unsupported pdf page format %q", o.Format)
	}
	if o.Orientation != "portrait" && o.Orientation != "landscape" {
		return fmt.Errorf("unsupported pdf orientation %q", o.Orientation)
	}
	return nil
}

// pageSize returns paper width and height in inches.
func (o PDFOptions) pageSize() (float64, float64) {
	if o.Orientation == "landscape" {
		return a4HeightIn, a4WidthIn
	}
	return a4WidthIn, a4HeightIn
}

// PDFRenderer turns a complete HTML page into PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string, opts PDFOptions) ([]byte, error)
}

// ChromeRenderer renders PDFs with a headless Chrome driven by chromedp.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRenderer struct {
	ExecPath string
	Timeout  time.Duration
}

// NewChromeRenderer creates a renderer. An empty execPath lets chromedp find Chrome.
func NewChromeRenderer(execPath string, timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeRenderer{ExecPath: execPath, Timeout: timeout}
}

// RenderPDF loads html into a fresh browser tab and prints it.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string, opts PDFOptions) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.Timeout)
	defer cancel()

	source := html
	if opts.Raster {
		img, err := r.capture(browserCtx, html, opts)
		if err != nil {
			return nil, err
		}
		source = imagePage(img)
	}

	var pdf []byte
	width, height := opts.pageSize()
	margin := opts.MarginMM / mmPerInch
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setContent(source),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return pdf, nil
}

// capture screenshots the page as a JPEG at the configured device scale,
// with the viewport as wide as the printable area.
func (r *ChromeRenderer) capture(ctx context.Context, html string, opts PDFOptions) ([]byte, error) {
	width, _ := opts.pageSize()
	printable := width - 2*opts.MarginMM/mmPerInch
	viewport := int64(math.Round(printable * cssPxPerInch))

	var img []byte
	err := chromedp.Run(ctx,
		chromedp.EmulateViewport(viewport, 1000, chromedp.EmulateScale(opts.Scale)),
		chromedp.Navigate("about:blank"),
		setContent(html),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&img, int(math.Round(opts.ImageQuality*100))),
	)
	if err != nil {
		return nil, fmt.Errorf("page capture failed: %w", err)
	}
	return img, nil
}

func setContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	})
}

func imagePage(jpeg []byte) string {
	return `<!DOCTYPE html><html><head><meta charset="utf-8"><style>` +
		`html, body { margin: 0; padding: 0; } img { display: block; width: 100%; }` +
		`</style></head><body><img src="data:image/jpeg;base64,` +
		base64.StdEncoding.EncodeToString(jpeg) +
		`"></body></html>`
}
