package quote

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/ytget/quote-display/internal/model"
	"github.com/ytget/quote-display/internal/platform"
)

// Fixed request target and identity
const (
	DefaultURL       = "https://finance.yahoo.com/quote/TSLA/"
	DefaultUserAgent = "Mozilla/5.0"
)

// Service fetches and parses the quote page
type Service struct {
	url        string
	userAgent  string
	timeout    time.Duration
	httpClient HTTPClient
}

// Option is a configuration option for the quote service.
type Option func(*Service)

// WithURL sets the page to scrape.
func WithURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.url = url
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(s *Service) {
		if userAgent != "" {
			s.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each request. Zero means no timeout, which lets an
// unresponsive server stall the fetch indefinitely.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout >= 0 {
			s.timeout = timeout
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(s *Service) {
		if httpClient != nil {
			s.httpClient = httpClient
		}
	}
}

// NewService creates a new quote service
func NewService(options ...Option) *Service {
	s := &Service{
		url:        DefaultURL,
		userAgent:  DefaultUserAgent,
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// URL returns the page the service scrapes
func (s *Service) URL() string {
	return s.url
}

// FetchQuote performs a single GET and extracts the quote fields.
func (s *Service) FetchQuote(ctx context.Context) (model.QuoteReading, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return model.NewQuoteReading(), &NetworkError{URL: s.url, Err: errors.Wrap(err, "build quote request")}
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return model.NewQuoteReading(), &NetworkError{URL: s.url, Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("Quote request to %s returned status %d", s.url, resp.StatusCode)
		return model.NewQuoteReading(), &NetworkError{
			URL:        s.url,
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("unexpected status: %s", resp.Status),
		}
	}

	reading, err := platform.ExtractQuote(resp.Body)
	if err != nil {
		// The body stream broke after the status line arrived.
		return model.NewQuoteReading(), &NetworkError{URL: s.url, Err: errors.Wrap(err, "read quote page")}
	}
	reading.FetchedAt = time.Now()

	if missing := reading.MissingFields(); len(missing) > 0 {
		log.Printf("Quote page %s is missing fields: %v", s.url, missing)
	}

	return reading, nil
}
