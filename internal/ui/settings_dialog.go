package ui

import (
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quote-display/internal/config"
)

// Settings dialog size
const (
	SettingsDialogWidth  = 500
	SettingsDialogHeight = 420
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	urlEntry       *widget.Entry
	userAgentEntry *widget.Entry
	headingEntry   *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.urlEntry = widget.NewEntry()
	sd.urlEntry.SetPlaceHolder(config.DefaultQuoteURL)
	sd.urlEntry.Validator = validateQuoteURL

	sd.userAgentEntry = widget.NewEntry()
	sd.userAgentEntry.SetPlaceHolder(config.DefaultUserAgent)

	sd.headingEntry = widget.NewEntry()
	sd.headingEntry.SetPlaceHolder(config.DefaultHeading)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("0-120")
	sd.timeoutEntry.Validator = validateTimeout

	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyRequestSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyQuoteURL)+":"),
		sd.urlEntry,

		widget.NewLabel(sd.localization.GetText(KeyUserAgent)+":"),
		sd.userAgentEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyHeading)+":"),
		sd.headingEntry,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.urlEntry.SetText(sd.settings.GetQuoteURL())
	sd.userAgentEntry.SetText(sd.settings.GetUserAgent())
	sd.headingEntry.SetText(sd.settings.GetHeading())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSec()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	if err := validateQuoteURL(sd.urlEntry.Text); err != nil {
		dialog.ShowError(errors.New(sd.localization.GetText(KeyInvalidURL)), sd.window)
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes entry values to settings; an unparsable timeout is skipped
func (sd *SettingsDialog) apply() {
	sd.settings.SetQuoteURL(strings.TrimSpace(sd.urlEntry.Text))

	sd.settings.SetUserAgent(strings.TrimSpace(sd.userAgentEntry.Text))
	sd.settings.SetHeading(strings.TrimSpace(sd.headingEntry.Text))

	if timeoutStr := strings.TrimSpace(sd.timeoutEntry.Text); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetRequestTimeoutSec(timeout)
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}

// validateQuoteURL accepts absolute http(s) URLs
func validateQuoteURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil // empty falls back to the default page
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return errors.New("URL must include a host")
	}

	return nil
}

// validateTimeout accepts whole seconds
func validateTimeout(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	sec, err := strconv.Atoi(input)
	if err != nil {
		return errors.New("timeout must be a whole number of seconds")
	}
	if sec < config.MinRequestTimeoutSec || sec > config.MaxRequestTimeoutSec {
		return errors.New("timeout must be between 0 and 120 seconds")
	}
	return nil
}
