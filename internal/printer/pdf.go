package printer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/foliodocs/folio/internal/document"
)

// defaultExportTimeout bounds a PDF export when the caller's context
// carries no deadline.
const defaultExportTimeout = 30 * time.Second

// ExportPDF renders the printable document to PDF through a headless
// Chrome target. Paper geometry derives from the renderer's page
// geometry, so the exported pages match the on-screen pages exactly.
// Failure to create or drive the rendering target is returned to the
// caller; there is no retry.
func (r *Renderer) ExportPDF(ctx context.Context, pages []document.Page) ([]byte, error) {
	doc, err := r.RenderHTML(pages)
	if err != nil {
		return nil, err
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultExportTimeout)
		defer cancel()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	dataURL := "data:text/html;charset=utf-8," + percentEncode(doc)

	var pdf []byte
	err = chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(r.geom.PaperWidthInches()).
				WithPaperHeight(r.geom.PaperHeightInches()).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		r.logger.Warn("pdf export failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	r.logger.Debug("pdf exported", "pages", len(pages), "bytes", len(pdf))
	return pdf, nil
}

// percentEncode encodes a document for a data URL. Spaces must become
// %20, not +, which rules out url.QueryEscape.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
