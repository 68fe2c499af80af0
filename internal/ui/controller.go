package ui

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/ytget/quote-display/internal/model"
	"github.com/ytget/quote-display/internal/quote"
)

// refreshKey is the singleflight key shared by all refresh calls
const refreshKey = "quote"

// View is the part of the window the controller writes to
type View interface {
	// SetQuoteText replaces the quote label text
	SetQuoteText(text string)
	// ShowError presents one modal dialog carrying err's message
	ShowError(err error)
	// SetRefreshing toggles the busy indication while a fetch runs
	SetRefreshing(busy bool)
}

// Formatter turns a reading into the label text
type Formatter func(model.QuoteReading) string

// Controller owns the quote label state and drives fetches. At most one fetch
// runs at a time; callers arriving while one is running wait for it and share
// its result instead of issuing another request.
type Controller struct {
	view        View
	format      Formatter
	placeholder string

	mu          sync.Mutex
	fetcher     quote.Fetcher
	state       model.DisplayState
	text        string
	lastReading model.QuoteReading

	inflight singleflight.Group
}

// NewController creates a controller bound to a fetcher and a view
func NewController(fetcher quote.Fetcher, view View, format Formatter, placeholder string) *Controller {
	return &Controller{
		view:        view,
		format:      format,
		placeholder: placeholder,
		fetcher:     fetcher,
		state:       model.DisplayStateInitial,
	}
}

// Initialize shows the placeholder and performs the first refresh
func (c *Controller) Initialize(ctx context.Context) error {
	c.mu.Lock()
	c.state = model.DisplayStateInitial
	c.text = c.placeholder
	c.lastReading = model.QuoteReading{}
	c.mu.Unlock()

	c.view.SetQuoteText(c.placeholder)
	return c.Refresh(ctx)
}

// Refresh fetches a new reading. On success the label is replaced with the
// formatted reading; on failure an error dialog is shown and the label is
// left as it was. The fetch error is returned.
func (c *Controller) Refresh(ctx context.Context) error {
	_, err, _ := c.inflight.Do(refreshKey, func() (interface{}, error) {
		return nil, c.refresh(ctx)
	})
	return err
}

func (c *Controller) refresh(ctx context.Context) error {
	refreshID := uuid.NewString()
	log.Printf("Refresh %s started", refreshID)

	c.view.SetRefreshing(true)
	defer c.view.SetRefreshing(false)

	reading, err := c.Fetcher().FetchQuote(ctx)
	if err != nil {
		log.Printf("Refresh %s failed: %v", refreshID, err)
		c.view.ShowError(err)
		return err
	}

	text := c.format(reading)

	c.mu.Lock()
	c.state = c.state.Next(true)
	c.text = text
	c.lastReading = reading
	c.mu.Unlock()

	c.view.SetQuoteText(text)
	log.Printf("Refresh %s completed: price=%s change=%s percent=%s",
		refreshID, reading.Price, reading.Change, reading.PercentChange)
	return nil
}

// Reformat re-renders the last reading, e.g. after a language change. It
// never fetches. The placeholder is re-set when nothing was fetched yet.
func (c *Controller) Reformat(placeholder string) {
	c.mu.Lock()
	c.placeholder = placeholder
	if c.state.HasReading() {
		c.text = c.format(c.lastReading)
	} else {
		c.text = placeholder
	}
	text := c.text
	c.mu.Unlock()

	c.view.SetQuoteText(text)
}

// SetFetcher swaps the fetcher used by later refreshes
func (c *Controller) SetFetcher(fetcher quote.Fetcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetcher = fetcher
}

// Fetcher returns the current fetcher
func (c *Controller) Fetcher() quote.Fetcher {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetcher
}

// State returns the current display state
func (c *Controller) State() model.DisplayState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Text returns the text last written to the label
func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// QuoteLabels are the localized line prefixes of the quote template
type QuoteLabels struct {
	Price            string
	Change           string
	PercentageChange string
}

// FormatQuote renders the multi-line quote template:
//
//	<heading>:
//	Price: $<price>
//	Change: <change>
//	Percentage Change: <percent>
func FormatQuote(heading string, labels QuoteLabels, reading model.QuoteReading) string {
	lines := []string{
		heading + ":",
		labels.Price + ": " + PricePrefix + reading.Price,
		labels.Change + ": " + reading.Change,
		labels.PercentageChange + ": " + reading.PercentChange,
	}
	return strings.Join(lines, QuoteLineSeparator)
}
