package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle = "app_title"
	KeyMotto    = "motto"
	KeyLanguage = "language"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle: "Custom Grid",
		KeyMotto:    "Strive not to be a success, but rather to be of value",
		KeyLanguage: "Language",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle: "Сетка",
		KeyMotto:    "Стремись не к успеху, а к тому, чтобы приносить пользу",
		KeyLanguage: "Язык",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle: "Grade Personalizada",
		KeyMotto:    "Esforce-se não para ter sucesso, mas para ter valor",
		KeyLanguage: "Idioma",
	}
}
