package quote

// Package quote implements the quote fetcher: a single GET of the configured
// finance page with a browser-like User-Agent, followed by field extraction.
// Transport failures and non-2xx statuses surface as *NetworkError; missing
// fields never do.
