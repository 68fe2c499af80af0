package model

import "time"

// NotAvailable is the sentinel substituted for a field whose source element
// is missing from the page.
const NotAvailable = "N/A"

// QuoteReading represents one scrape of the quote page
type QuoteReading struct {
	Price         string
	Change        string
	PercentChange string
	FetchedAt     time.Time // when the page was received
}

// NewQuoteReading returns a reading with every field set to the sentinel
func NewQuoteReading() QuoteReading {
	return QuoteReading{
		Price:         NotAvailable,
		Change:        NotAvailable,
		PercentChange: NotAvailable,
	}
}

// IsComplete reports whether all three fields were found on the page
func (q QuoteReading) IsComplete() bool {
	return q.Price != NotAvailable && q.Change != NotAvailable && q.PercentChange != NotAvailable
}

// MissingFields returns the names of the fields that fell back to the sentinel
func (q QuoteReading) MissingFields() []string {
	var missing []string
	if q.Price == NotAvailable {
		missing = append(missing, "price")
	}
	if q.Change == NotAvailable {
		missing = append(missing, "change")
	}
	if q.PercentChange == NotAvailable {
		missing = append(missing, "percent_change")
	}
	return missing
}

// SameValues compares the displayed fields, ignoring FetchedAt
func (q QuoteReading) SameValues(other QuoteReading) bool {
	return q.Price == other.Price && q.Change == other.Change && q.PercentChange == other.PercentChange
}
