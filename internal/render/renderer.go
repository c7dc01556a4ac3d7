package render

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Exporter turns rendered invoice HTML into PDF or PNG bytes with a
// headless Chrome. Each call runs its own browser context; invoice
// export is an occasional admin action, not a hot path.
type Exporter struct {
	Timeout time.Duration
}

func NewExporter() *Exporter {
	return &Exporter{Timeout: 30 * time.Second}
}

// detectChromePath checks CHROME_PATH first, then common install
// locations, so the exporter works inside containers.
func detectChromePath() string {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (e *Exporter) newBrowserContext(ctx context.Context) (context.Context, context.CancelFunc, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.NoSandbox)
	if p := detectChromePath(); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	return browserCtx, browserCancel, allocCancel
}

// setContent loads the HTML into the current tab without a network
// round trip.
func setContent(html string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	}
}

// PDF prints the invoice HTML onto A4 paper.
func (e *Exporter) PDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	browserCtx, browserCancel, allocCancel := e.newBrowserContext(ctx)
	defer allocCancel()
	defer browserCancel()

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setContent(html),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27in x 11.69in
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}

// PNG screenshots the invoice HTML at an A4-ish viewport width.
func (e *Exporter) PNG(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	browserCtx, browserCancel, allocCancel := e.newBrowserContext(ctx)
	defer allocCancel()
	defer browserCancel()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate("about:blank"),
		setContent(html),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
