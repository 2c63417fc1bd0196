package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// DocumentService prints quote documents to PDF with headless Chrome
type DocumentService struct {
	chromePath string
	timeout    time.Duration
	log        logrus.FieldLogger
}

// Ensure DocumentService implements DocumentServiceInterface
var _ DocumentServiceInterface = (*DocumentService)(nil)

// chromeCandidates are checked in order when no explicit path is configured
var chromeCandidates = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
}

// detectChromePath returns the configured Chrome path if it exists, else the first installed candidate.
// An empty result lets chromedp search the PATH itself.
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}
	for _, path := range chromeCandidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(chromePath string, timeout time.Duration, log logrus.FieldLogger) *DocumentService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DocumentService{
		chromePath: detectChromePath(chromePath),
		timeout:    timeout,
		log:        log,
	}
}

// GeneratePDF loads the HTML into a blank tab and prints it on US letter paper.
// Page size and margins come from the document's @page rule.
func (s *DocumentService) GeneratePDF(ctx context.Context, html []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if s.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	start := time.Now()
	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("failed to get frame tree: %w", err)
			}
			return page.SetDocumentContent(frameTree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
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
		s.log.Errorf("❌ GeneratePDF: %v", err)
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"bytes":    len(pdfBuf),
		"duration": time.Since(start).String(),
	}).Debug("📄 GeneratePDF: document printed")
	return pdfBuf, nil
}
