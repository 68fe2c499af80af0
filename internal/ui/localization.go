package ui

import (
	"sync"

	"fyne.io/fyne/v2/lang"
)

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTitleLabel        = "title_label"
	KeyRefresh           = "refresh"
	KeyFetching          = "fetching"
	KeyError             = "error"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyQuoteURL          = "quote_url"
	KeyUserAgent         = "user_agent"
	KeyHeading           = "heading"
	KeyRequestTimeout    = "request_timeout"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidURL        = "invalid_url"
	KeyPrice             = "price"
	KeyChange            = "change"
	KeyPercentageChange  = "percentage_change"
	KeyRequestSettings   = "request_settings"
	KeyInterfaceSettings = "interface_settings"
)

// fallbackLanguage is used for unknown codes and missing keys
const fallbackLanguage = "en"

// languageNames lists the supported languages by display name
var languageNames = map[string]string{
	"en": "English",
	"ru": "Русский",
	"pt": "Português",
}

// Localization resolves text keys in the selected language. It is safe for
// concurrent use; quotes are formatted on fetch goroutines.
type Localization struct {
	mu      sync.RWMutex
	current string
}

// NewLocalization creates a localization in English
func NewLocalization() *Localization {
	return &Localization{current: fallbackLanguage}
}

// SetLanguage switches to code. "system" picks the OS locale when it is
// supported; unknown codes are ignored.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}
	if _, ok := translations[code]; ok {
		l.mu.Lock()
		l.current = code
		l.mu.Unlock()
	}
}

// GetText returns the text for key, falling back to English and then to the key
func (l *Localization) GetText(key string) string {
	l.mu.RLock()
	current := l.current
	l.mu.RUnlock()

	if text, ok := translations[current][key]; ok {
		return text
	}
	if text, ok := translations[fallbackLanguage][key]; ok {
		return text
	}
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// GetAvailableLanguages returns language codes mapped to display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	out := make(map[string]string, len(languageNames))
	for code, name := range languageNames {
		out[code] = name
	}
	return out
}

func systemLanguage() string {
	code := lang.SystemLocale().LanguageString()
	if _, ok := translations[code]; ok {
		return code
	}
	return fallbackLanguage
}

var translations = map[string]map[string]string{
	"en": {
		KeyAppTitle:          "Tesla Stock Price",
		KeyTitleLabel:        "TESLA COST PRICE",
		KeyRefresh:           "Refresh",
		KeyFetching:          "Fetching...",
		KeyError:             "Error",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyQuoteURL:          "Quote Page URL",
		KeyUserAgent:         "User-Agent",
		KeyHeading:           "Heading",
		KeyRequestTimeout:    "Request Timeout (sec, 0 = none)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidURL:        "Invalid URL",
		KeyPrice:             "Price",
		KeyChange:            "Change",
		KeyPercentageChange:  "Percentage Change",
		KeyRequestSettings:   "Request Settings",
		KeyInterfaceSettings: "Interface Settings",
	},

	"ru": {
		KeyAppTitle:          "Курс акций Tesla",
		KeyTitleLabel:        "СТОИМОСТЬ АКЦИЙ TESLA",
		KeyRefresh:           "Обновить",
		KeyFetching:          "Загрузка...",
		KeyError:             "Ошибка",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyQuoteURL:          "URL страницы котировки",
		KeyUserAgent:         "User-Agent",
		KeyHeading:           "Заголовок",
		KeyRequestTimeout:    "Таймаут запроса (сек, 0 = нет)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInvalidURL:        "Неверный URL",
		KeyPrice:             "Цена",
		KeyChange:            "Изменение",
		KeyPercentageChange:  "Изменение в процентах",
		KeyRequestSettings:   "Параметры запроса",
		KeyInterfaceSettings: "Интерфейс",
	},

	"pt": {
		KeyAppTitle:          "Preço da Ação Tesla",
		KeyTitleLabel:        "PREÇO DA TESLA",
		KeyRefresh:           "Atualizar",
		KeyFetching:          "Buscando...",
		KeyError:             "Erro",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyQuoteURL:          "URL da Página de Cotação",
		KeyUserAgent:         "User-Agent",
		KeyHeading:           "Título",
		KeyRequestTimeout:    "Tempo Limite (seg, 0 = nenhum)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInvalidURL:        "URL inválida",
		KeyPrice:             "Preço",
		KeyChange:            "Variação",
		KeyPercentageChange:  "Variação Percentual",
		KeyRequestSettings:   "Configurações de Requisição",
		KeyInterfaceSettings: "Interface",
	},
}
