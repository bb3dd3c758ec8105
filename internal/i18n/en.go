package i18n

// englishTranslations returns all English text strings.
func englishTranslations() Translations {
	return Translations{
		Title:    "Fuel Calculator",
		Subtitle: "Work out how much fuel your trip needs",

		StartLabel:          "Start odometer (km)",
		EndLabel:            "End odometer (km)",
		DistancePlaceholder: "e.g. 12000",
		VehicleLabel:        "Vehicle",
		VehiclePlaceholder:  "-- select a vehicle --",

		CalculateButton: "Calculate",
		ResetButton:     "Reset",
		LanguageButton:  "Bahasa Indonesia",

		ErrMissingField:   "Please fill in all fields",
		ErrInvalidNumber:  "Distance must be a number",
		ErrInvalidRange:   "End reading must be greater than start reading",
		ErrUnknownVehicle: "Unknown vehicle",

		ResultFormat:   "Fuel needed: %.2f liters",
		DistanceFormat: "Trip distance: %g km",
		VehicleFormat:  "%s (%g km/l)",
		Help:           "[Tab] next field  [Esc] quit",
	}
}
