package i18n

// indonesianTranslations returns all Indonesian text strings.
func indonesianTranslations() Translations {
	return Translations{
		Title:    "Kalkulator BBM",
		Subtitle: "Hitung kebutuhan bahan bakar perjalananmu",

		StartLabel:          "Km awal",
		EndLabel:            "Km akhir",
		DistancePlaceholder: "misal: 12000",
		VehicleLabel:        "Kendaraan",
		VehiclePlaceholder:  "-- pilih kendaraan --",

		CalculateButton: "Hitung",
		ResetButton:     "Ulangi",
		LanguageButton:  "English",

		ErrMissingField:   "Semua kolom wajib diisi",
		ErrInvalidNumber:  "Jarak harus berupa angka",
		ErrInvalidRange:   "Km akhir harus lebih besar dari km awal",
		ErrUnknownVehicle: "Kendaraan tidak dikenal",

		ResultFormat:   "Kebutuhan BBM: %.2f liter",
		DistanceFormat: "Jarak tempuh: %g km",
		VehicleFormat:  "%s (%g km/l)",
		Help:           "[Tab] pindah kolom  [Esc] keluar",
	}
}
