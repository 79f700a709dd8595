package rendering

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single PDF rendering pass. Rendering a local file
// in headless Chrome is fast; the bound exists so a wedged browser does not
// hang the run forever.
const DefaultTimeout = 60 * time.Second

// Renderer converts an HTML string into a PDF file at outputPath.
type Renderer interface {
	RenderPDF(ctx context.Context, html, outputPath string) error
}

// ChromeRenderer renders PDFs with a headless Chrome instance.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRenderer struct {
	Timeout time.Duration
}

// NewChromeRenderer creates a renderer with the default timeout.
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{Timeout: DefaultTimeout}
}

// RenderPDF writes the HTML to a temp file, loads it over file:// with local
// file access enabled, prints the page to PDF, and writes the result to
// outputPath, overwriting any existing file.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html, outputPath string) error {
	tmpDir, err := os.MkdirTemp("", "tailor-render-*")
	if err != nil {
		return &RenderError{Message: "failed to create temp dir", Cause: err}
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "document.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return &RenderError{Message: "failed to write temp HTML", Cause: err}
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("allow-file-access-from-files", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return &RenderError{Message: "headless browser rendering failed", Cause: err}
	}

	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return &RenderError{Message: "failed to write " + outputPath, Cause: err}
	}

	return nil
}
