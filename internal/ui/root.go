package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quote-display/internal/config"
	"github.com/ytget/quote-display/internal/model"
	"github.com/ytget/quote-display/internal/quote"
)

// FetcherFactory builds a fetcher from the current settings
type FetcherFactory func(settings *config.Settings) quote.Fetcher

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	newFetcher   FetcherFactory
	controller   *Controller

	// Cancelled when the window closes so an in-flight fetch is abandoned
	ctx    context.Context
	cancel context.CancelFunc

	titleText  *canvas.Text
	quoteLabel *widget.Label
	refreshBtn *RefreshButton
}

var _ View = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, newFetcher FetcherFactory) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		newFetcher:   newFetcher,
		ctx:          ctx,
		cancel:       cancel,
	}
	ui.controller = NewController(newFetcher(settings), ui, ui.formatQuote, localization.GetText(KeyFetching))

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(cancel)

	ui.setupUI()
	return ui
}

// Start shows the placeholder and fetches the first quote in the background
func (ui *RootUI) Start() {
	go func() {
		if err := ui.controller.Initialize(ui.ctx); err != nil {
			log.Printf("Initial quote fetch failed: %v", err)
		}
	}()
}

// Controller returns the display controller
func (ui *RootUI) Controller() *Controller {
	return ui.controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleText = canvas.NewText(ui.localization.GetText(KeyTitleLabel), ColorText)
	ui.titleText.TextSize = TitleTextSize
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleText.Alignment = fyne.TextAlignCenter

	ui.quoteLabel = widget.NewLabel(ui.localization.GetText(KeyFetching))
	ui.quoteLabel.Alignment = fyne.TextAlignCenter
	ui.quoteLabel.Wrapping = fyne.TextWrapWord
	ui.quoteLabel.SizeName = theme.SizeNameSubHeadingText

	ui.refreshBtn = NewRefreshButton(ui.localization.GetText(KeyRefresh), ui.onRefreshClick)

	quoteArea := ui.mobile.WrapRefreshable(container.NewCenter(ui.quoteLabel), ui.onRefreshClick)

	content := container.NewBorder(
		ui.titleText,                       // top
		container.NewCenter(ui.refreshBtn), // bottom
		nil,                                // left
		nil,                                // right
		quoteArea,                          // center
	)

	ui.window.SetContent(ui.mobile.Pad(content))

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	refreshItem := fyne.NewMenuItem(IconRefresh+" "+ui.localization.GetText(KeyRefresh), ui.onRefreshClick)
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), refreshItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onRefreshClick runs a refresh off the UI goroutine so the window stays
// responsive; the controller serializes overlapping requests
func (ui *RootUI) onRefreshClick() {
	go func() {
		if err := ui.controller.Refresh(ui.ctx); err != nil {
			log.Printf("Quote refresh failed: %v", err)
		}
	}()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleText.Text = ui.localization.GetText(KeyTitleLabel)
	ui.titleText.Refresh()
	ui.refreshBtn.SetText(ui.localization.GetText(KeyRefresh))
	ui.controller.Reformat(ui.localization.GetText(KeyFetching))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.controller.SetFetcher(ui.newFetcher(ui.settings))
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	log.Printf("Settings applied: url=%s timeout=%v", ui.settings.GetQuoteURL(), ui.settings.GetRequestTimeout())
}

// formatQuote renders a reading with the configured heading and current language
func (ui *RootUI) formatQuote(reading model.QuoteReading) string {
	return FormatQuote(ui.settings.GetHeading(), QuoteLabels{
		Price:            ui.localization.GetText(KeyPrice),
		Change:           ui.localization.GetText(KeyChange),
		PercentageChange: ui.localization.GetText(KeyPercentageChange),
	}, reading)
}

// SetQuoteText implements View
func (ui *RootUI) SetQuoteText(text string) {
	fyne.Do(func() {
		ui.quoteLabel.SetText(text)
	})
}

// ShowError implements View
func (ui *RootUI) ShowError(err error) {
	fyne.Do(func() {
		d := dialog.NewInformation(ui.localization.GetText(KeyError), err.Error(), ui.window)
		d.Resize(fyne.NewSize(ErrorDialogWidth, ErrorDialogHeight))
		d.Show()
	})
}

// SetRefreshing implements View
func (ui *RootUI) SetRefreshing(busy bool) {
	fyne.Do(func() {
		if busy {
			ui.refreshBtn.Disable()
		} else {
			ui.refreshBtn.Enable()
		}
	})
}
