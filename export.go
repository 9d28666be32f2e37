package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"

	"github.com/van-is-code/portfolio/internal/content"
	"github.com/van-is-code/portfolio/internal/view"
)

var exportCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Render the printable CV to PDF",
	Long:  ExportHelp,
	RunE:  runExport,
}

var (
	exportLang    string
	exportOut     string
	exportTimeout time.Duration
)

func init() {
	exportCmd.Flags().StringVarP(&exportLang, "lang", "l", string(content.Vietnamese), "CV language")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", filepath.Join("dist", "files", "cv.pdf"), "Output PDF path")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 30*time.Second, "Browser timeout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	lang := content.ParseLanguage(exportLang)

	p, err := content.NewLoader().Load(ctx, lang)
	if err != nil {
		return err
	}
	doc, err := view.RenderPrint(lang, p)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "cv-*.html")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	pdf, err := printToPDF(ctx, "file://"+tmp.Name(), exportTimeout)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(exportOut), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(exportOut, pdf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	log.Printf("Wrote %s (%d bytes)", exportOut, len(pdf))
	return nil
}

// printToPDF loads url in headless Chrome and prints it using the page's own
// @page size and margins.
func printToPDF(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("#cv-content"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to PDF: %w", err)
	}
	return pdf, nil
}
