package platform

import (
	"errors"
	"strings"
	"testing"

	"github.com/ytget/quote-display/internal/model"
)

const fullQuotePage = `<!DOCTYPE html>
<html><body>
<section class="quote">
  <fin-streamer data-field="regularMarketPrice" data-symbol="TSLA">248.50</fin-streamer>
  <fin-streamer data-field="regularMarketChange" data-symbol="TSLA"> +3.20 </fin-streamer>
  <fin-streamer data-field="regularMarketChangePercent" data-symbol="TSLA">
    +1.30%
  </fin-streamer>
</section>
</body></html>`

func TestFieldSelector(t *testing.T) {
	tests := []struct {
		field    string
		expected string
	}{
		{FieldPrice, `fin-streamer[data-field="regularMarketPrice"]`},
		{FieldChange, `fin-streamer[data-field="regularMarketChange"]`},
		{FieldChangePercent, `fin-streamer[data-field="regularMarketChangePercent"]`},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := FieldSelector(tt.field); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestExtractQuote_AllFieldsPresent(t *testing.T) {
	reading, err := ExtractQuote(strings.NewReader(fullQuotePage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reading.Price != "248.50" {
		t.Errorf("expected price 248.50, got %q", reading.Price)
	}
	if reading.Change != "+3.20" {
		t.Errorf("expected change +3.20, got %q", reading.Change)
	}
	if reading.PercentChange != "+1.30%" {
		t.Errorf("expected percent change +1.30%%, got %q", reading.PercentChange)
	}
}

func TestExtractQuote_FieldsAreIndependent(t *testing.T) {
	price := `<fin-streamer data-field="regularMarketPrice">248.50</fin-streamer>`
	change := `<fin-streamer data-field="regularMarketChange">+3.20</fin-streamer>`
	percent := `<fin-streamer data-field="regularMarketChangePercent">+1.30%</fin-streamer>`

	tests := []struct {
		name     string
		body     string
		expected model.QuoteReading
	}{
		{
			name:     "price missing",
			body:     change + percent,
			expected: model.QuoteReading{Price: model.NotAvailable, Change: "+3.20", PercentChange: "+1.30%"},
		},
		{
			name:     "change missing",
			body:     price + percent,
			expected: model.QuoteReading{Price: "248.50", Change: model.NotAvailable, PercentChange: "+1.30%"},
		},
		{
			name:     "percent change missing",
			body:     price + change,
			expected: model.QuoteReading{Price: "248.50", Change: "+3.20", PercentChange: model.NotAvailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, err := ExtractQuote(strings.NewReader("<html><body>" + tt.body + "</body></html>"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reading.SameValues(tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, reading)
			}
		})
	}
}

func TestExtractQuote_FirstMatchWins(t *testing.T) {
	body := `<div>
<fin-streamer data-field="regularMarketPrice">100.00</fin-streamer>
<fin-streamer data-field="regularMarketPrice">200.00</fin-streamer>
</div>`

	reading, err := ExtractQuote(strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.Price != "100.00" {
		t.Errorf("expected first match 100.00, got %q", reading.Price)
	}
}

func TestExtractQuote_IgnoresOtherTagsAndFields(t *testing.T) {
	body := `<span data-field="regularMarketPrice">1.00</span>
<fin-streamer data-field="regularMarketVolume">12345</fin-streamer>`

	reading, err := ExtractQuote(strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reading.SameValues(model.NewQuoteReading()) {
		t.Errorf("expected all fields N/A, got %+v", reading)
	}
}

func TestExtractQuote_EmptyOrMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty document", ""},
		{"plain text", "not html at all"},
		{"unclosed tags", "<html><body><div><fin-streamer data-field=\"other\">"},
		{"client rendered shell", `<html><head><script src="app.js"></script></head><body><div id="root"></div></body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, err := ExtractQuote(strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reading.SameValues(model.NewQuoteReading()) {
				t.Errorf("expected all fields N/A, got %+v", reading)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestExtractQuote_ReadError(t *testing.T) {
	_, err := ExtractQuote(failingReader{})
	if err == nil {
		t.Fatal("expected error for failing reader")
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("expected error to carry cause, got %v", err)
	}
}
