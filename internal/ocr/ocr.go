// Package ocr extracts transaction drafts from receipt images. The real
// engine sits behind the Extractor interface; the shipped Mock simulates it
// with a fixed delay and canned values so the receipt flow works offline.
package ocr

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketfin-dev/pocketfin/internal/format"
)

// Fields are the structured values pulled from a receipt. The caller edits
// them before the draft becomes a transaction.
type Fields struct {
	Date     string
	Merchant string
	Total    decimal.Decimal
	VAT      decimal.Decimal
	Note     string
}

// Confidence scores each extracted field on a 0..1 scale.
type Confidence struct {
	Date     float64
	Merchant float64
	Total    float64
	VAT      float64
}

// Result pairs the extracted fields with their confidence scores.
type Result struct {
	Fields     Fields
	Confidence Confidence
}

// Extractor turns a receipt image into a draft.
type Extractor interface {
	Extract(ctx context.Context, filename string) (Result, error)
}

// Mock is the demo extractor. The merchant is guessed from the file name;
// amounts and confidences are canned.
type Mock struct {
	// Delay simulates engine latency. Zero means the default 700ms.
	Delay time.Duration

	// Now stands in for time.Now in tests.
	Now func() time.Time
}

const defaultDelay = 700 * time.Millisecond

var nameSeparators = regexp.MustCompile(`[_-]+`)

func (m Mock) Extract(ctx context.Context, filename string) (Result, error) {
	delay := m.Delay
	if delay == 0 {
		delay = defaultDelay
	}
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-time.After(delay):
	}

	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	merchant := MerchantFromFilename(filename)
	if merchant == "" {
		merchant = "Merchant từ OCR"
	}
	return Result{
		Fields: Fields{
			Date:     format.InputDate(now()),
			Merchant: merchant,
			Total:    decimal.NewFromInt(65000),
			VAT:      decimal.NewFromInt(5200),
			Note:     "OCR demo: tự động parse từ file " + filepath.Base(filename),
		},
		Confidence: Confidence{
			Date:     0.86,
			Merchant: 0.82,
			Total:    0.92,
			VAT:      0.67,
		},
	}, nil
}

// MerchantFromFilename strips the extension and separator noise from a
// receipt file name, "circle-k_2024.jpg" becoming "circle k 2024".
func MerchantFromFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimSpace(nameSeparators.ReplaceAllString(base, " "))
}
