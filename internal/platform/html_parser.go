package platform

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ytget/quote-display/internal/model"
)

// Element and attribute that carry streamed quote values on the page
const (
	QuoteTag       = "fin-streamer"
	DataFieldAttr  = "data-field"
	SelectorFormat = `%s[%s="%s"]`
)

// Data-field values for each quote field
const (
	FieldPrice         = "regularMarketPrice"
	FieldChange        = "regularMarketChange"
	FieldChangePercent = "regularMarketChangePercent"
)

// FieldSelector returns the CSS selector matching the element for a data field
func FieldSelector(field string) string {
	return fmt.Sprintf(SelectorFormat, QuoteTag, DataFieldAttr, field)
}

// ExtractQuote parses an HTML document and pulls the three quote fields out of
// it. A field whose element is absent becomes model.NotAvailable; only a read
// failure on r is reported as an error.
func ExtractQuote(r io.Reader) (model.QuoteReading, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return model.NewQuoteReading(), fmt.Errorf("failed to parse quote page: %w", err)
	}

	return model.QuoteReading{
		Price:         extractField(doc, FieldPrice),
		Change:        extractField(doc, FieldChange),
		PercentChange: extractField(doc, FieldChangePercent),
	}, nil
}

// extractField returns the trimmed text of the first matching element
func extractField(doc *goquery.Document, field string) string {
	sel := doc.Find(FieldSelector(field)).First()
	if sel.Length() == 0 {
		return model.NotAvailable
	}
	return strings.TrimSpace(sel.Text())
}
