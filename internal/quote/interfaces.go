package quote

import (
	"context"
	"net/http"

	"github.com/ytget/quote-display/internal/model"
)

// Fetcher defines the interface for the quote fetcher.
//
//go:generate mockgen -package=ui -destination=../ui/mock_fetcher_test.go github.com/ytget/quote-display/internal/quote Fetcher
type Fetcher interface {
	// FetchQuote performs one request and returns the extracted reading
	FetchQuote(ctx context.Context) (model.QuoteReading, error)
}

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=quote_test -destination=mock_http_client_test.go -source=interfaces.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
