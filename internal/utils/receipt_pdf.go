package utils

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// RenderReceiptPDF charge la page reçu du front React et l'imprime en PDF.
// receiptURL doit ressembler à: http://localhost:3000/receipt
func RenderReceiptPDF(receiptURL string, orderID int) ([]byte, error) {
	q := url.Values{}
	q.Set("id", fmt.Sprintf("%d", orderID))

	fullURL := fmt.Sprintf("%s?%s", receiptURL, q.Encode())

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	// timeout pour éviter de bloquer la caisse
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBuf []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate(fullURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}

// Helper: récupère l'URL de la page reçu du front depuis l'env
func GetFrontendReceiptBaseURL() string {
	u := os.Getenv("FRONTEND_RECEIPT_URL")
	if u == "" {
		// fallback local dev
		return "http://localhost:3000/receipt"
	}
	return u
}
