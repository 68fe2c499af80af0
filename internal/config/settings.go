package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/quote-display/internal/quote"
)

// Settings keys for Fyne preferences
const (
	KeyQuoteURL          = "quote_url"
	KeyUserAgent         = "user_agent"
	KeyHeading           = "heading"
	KeyRequestTimeoutSec = "request_timeout_sec"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultQuoteURL          = quote.DefaultURL
	DefaultUserAgent         = quote.DefaultUserAgent
	DefaultHeading           = "Tesla Stock (TSLA)"
	DefaultRequestTimeoutSec = 0
	DefaultLanguage          = "system"
)

// Request timeout bounds in seconds; zero disables the timeout
const (
	MinRequestTimeoutSec = 0
	MaxRequestTimeoutSec = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetQuoteURL returns the page to scrape
func (s *Settings) GetQuoteURL() string {
	url := s.app.Preferences().String(KeyQuoteURL)
	if url == "" {
		s.SetQuoteURL(DefaultQuoteURL)
		return DefaultQuoteURL
	}
	return url
}

// SetQuoteURL sets the page to scrape
func (s *Settings) SetQuoteURL(url string) {
	if url == "" {
		url = DefaultQuoteURL
	}
	s.app.Preferences().SetString(KeyQuoteURL, url)
}

// GetUserAgent returns the User-Agent sent with quote requests
func (s *Settings) GetUserAgent() string {
	agent := s.app.Preferences().String(KeyUserAgent)
	if agent == "" {
		s.SetUserAgent(DefaultUserAgent)
		return DefaultUserAgent
	}
	return agent
}

// SetUserAgent sets the User-Agent sent with quote requests
func (s *Settings) SetUserAgent(agent string) {
	if agent == "" {
		agent = DefaultUserAgent
	}
	s.app.Preferences().SetString(KeyUserAgent, agent)
}

// GetHeading returns the first line of the quote label
func (s *Settings) GetHeading() string {
	return s.app.Preferences().StringWithFallback(KeyHeading, DefaultHeading)
}

// SetHeading sets the first line of the quote label
func (s *Settings) SetHeading(heading string) {
	if heading == "" {
		heading = DefaultHeading
	}
	s.app.Preferences().SetString(KeyHeading, heading)
}

// GetRequestTimeoutSec returns the request timeout in seconds
func (s *Settings) GetRequestTimeoutSec() int {
	return s.app.Preferences().IntWithFallback(KeyRequestTimeoutSec, DefaultRequestTimeoutSec)
}

// SetRequestTimeoutSec sets the request timeout in seconds
func (s *Settings) SetRequestTimeoutSec(sec int) {
	if sec < MinRequestTimeoutSec {
		sec = MinRequestTimeoutSec
	}
	if sec > MaxRequestTimeoutSec {
		sec = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeoutSec, sec)
}

// GetRequestTimeout returns the request timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSec()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// FetcherOptions returns the quote service options matching current settings
func (s *Settings) FetcherOptions() []quote.Option {
	return []quote.Option{
		quote.WithURL(s.GetQuoteURL()),
		quote.WithUserAgent(s.GetUserAgent()),
		quote.WithTimeout(s.GetRequestTimeout()),
	}
}
