package browser

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

const (
	// A4-equivalent viewport in CSS pixels, matching the templates' 210mm
	// content width.
	viewportWidth  = 794
	viewportHeight = 1123

	// A4 paper and margins in inches for the print backend.
	paperWidthInches       = 8.27
	paperHeightInches      = 11.69
	marginVerticalInches   = 0.79 // 20mm
	marginHorizontalInches = 0.59 // 15mm

	// DefaultTimeout bounds engine launch plus content load plus export
	// for one render. There is no unbounded wait anywhere in the pipeline.
	DefaultTimeout = 30 * time.Second
)

// PDFRenderer converts HTML documents into A4 PDF artifacts through a
// headless Chromium instance. Every call launches its own engine process
// and tears it down when done; instances are never pooled or shared
// across requests.
type PDFRenderer struct {
	launch  LaunchConfig
	timeout time.Duration

	// run executes the CDP action sequence; swapped out in tests.
	run func(ctx context.Context, actions ...chromedp.Action) error
}

// NewPDFRenderer creates a renderer for the given launch configuration.
// A non-positive timeout falls back to DefaultTimeout.
func NewPDFRenderer(launch LaunchConfig, timeout time.Duration) *PDFRenderer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &PDFRenderer{launch: launch, timeout: timeout, run: chromedp.Run}
}

// RenderPDF renders a self-contained HTML document to PDF bytes. The steps
// run strictly in sequence: launch, viewport setup, content injection,
// font readiness, artifact extraction. Teardown is deferred so the engine
// process is released on every exit path, including timeouts and
// mid-pipeline failures.
func (r *PDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions(r.launch)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.timeout)
	defer cancelRun()

	var pdf []byte
	err := r.run(runCtx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight),
		chromedp.Navigate("about:blank"),
		// The document goes in through the DevTools protocol rather than a
		// URL or served page, so non-ASCII text cannot be mangled by a
		// transport encoding.
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		// Text metrics must be final before pagination is computed, so wait
		// for the font set to settle before printing.
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, nil, awaitPromise),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginVerticalInches).
				WithMarginBottom(marginVerticalInches).
				WithMarginLeft(marginHorizontalInches).
				WithMarginRight(marginHorizontalInches).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, r.classify(err)
	}
	return pdf, nil
}

// classify maps raw chromedp failures onto the pipeline error taxonomy.
func (r *PDFRenderer) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &RenderTimeoutError{Timeout: r.timeout}
	}
	msg := err.Error()
	if strings.Contains(msg, "executable file not found") || strings.Contains(msg, "no such file or directory") {
		return &EngineNotFoundError{
			Message: "failed to launch browser (install Google Chrome or set CHROME_PATH to a Chromium binary)",
			Cause:   err,
		}
	}
	return &RenderError{Message: "browser rendering failed", Cause: err}
}

func allocatorOptions(launch LaunchConfig) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts, chromedp.Flag("headless", launch.Headless))
	for _, arg := range launch.Args {
		opts = append(opts, chromedp.Flag(arg, true))
	}
	if launch.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(launch.ExecPath))
	}
	return opts
}

func awaitPromise(p *runtime.EvaluateParams) *runtime.EvaluateParams {
	return p.WithAwaitPromise(true)
}
