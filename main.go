package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/quote-display/internal/config"
	"github.com/ytget/quote-display/internal/quote"
	"github.com/ytget/quote-display/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.quote-display"
	AppName = "Tesla Stock Price"

	WindowWidth  = 400
	WindowHeight = 500
)

func main() {
	fmt.Printf("Quote Display v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewQuoteTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		fmt.Printf("app icon not loaded: %v\n", err)
	}

	rootUI := ui.NewRootUI(myWindow, myApp, newFetcher)

	// The first fetch starts once the event loop is running so the
	// placeholder is visible while it is in flight.
	myApp.Lifecycle().SetOnStarted(rootUI.Start)

	myWindow.ShowAndRun()
}

// newFetcher builds the quote service from persisted settings
func newFetcher(settings *config.Settings) quote.Fetcher {
	return quote.NewService(settings.FetcherOptions()...)
}
