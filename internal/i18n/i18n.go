package i18n

// Language is a supported UI language tag.
type Language string

const (
	English    Language = "en"
	Indonesian Language = "id"
)

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == Indonesian {
		return English
	}
	return Indonesian
}

// Translations contains all text strings for the application.
type Translations struct {
	// Header
	Title    string
	Subtitle string

	// Form
	StartLabel          string
	EndLabel            string
	DistancePlaceholder string
	VehicleLabel        string
	VehiclePlaceholder  string

	// Buttons
	CalculateButton string
	ResetButton     string
	LanguageButton  string

	// Error messages
	ErrMissingField   string
	ErrInvalidNumber  string
	ErrInvalidRange   string
	ErrUnknownVehicle string

	// Result / footer
	ResultFormat   string
	DistanceFormat string
	VehicleFormat  string
	Help           string
}

// For returns the translations for the given language.
// Unknown tags fall back to English.
func For(lang Language) Translations {
	switch lang {
	case Indonesian:
		return indonesianTranslations()
	default:
		return englishTranslations()
	}
}

// Parse maps a language tag string to a Language, defaulting to Indonesian.
func Parse(tag string) Language {
	switch tag {
	case "en", "english":
		return English
	default:
		return Indonesian
	}
}
