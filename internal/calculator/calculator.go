package calculator

import (
	"errors"
	"math"
	"strconv"

	"bensin/internal/catalog"
	"bensin/internal/i18n"
	"bensin/internal/models"
)

// Validation failures, in the order Calculate checks them. The first
// failing check wins; only one error is ever reported at a time.
var (
	ErrMissingField   = errors.New("required field is empty")
	ErrInvalidNumber  = errors.New("distance is not a number")
	ErrInvalidRange   = errors.New("end reading must be greater than start reading")
	ErrUnknownVehicle = errors.New("unknown vehicle")
)

// FormState holds the ephemeral input and output state of the form.
// Result and ErrorMessage are never both set.
type FormState struct {
	StartKm      string
	EndKm        string
	VehicleID    string
	Result       *float64
	ErrorMessage string
	Language     i18n.Language
}

// Calculator owns the form state and computes fuel consumption
// against a vehicle catalog. All mutations happen synchronously in
// response to a single user action; there is no shared state.
type Calculator struct {
	catalog *catalog.Catalog
	state   FormState
}

func New(cat *catalog.Catalog, lang i18n.Language) *Calculator {
	return &Calculator{
		catalog: cat,
		state:   FormState{Language: lang},
	}
}

func (c *Calculator) SetStartKm(s string) { c.state.StartKm = s }

func (c *Calculator) SetEndKm(s string) { c.state.EndKm = s }

func (c *Calculator) SetVehicleID(s string) { c.state.VehicleID = s }

// State returns a copy of the current form state.
func (c *Calculator) State() FormState {
	return c.state
}

// Messages returns the text catalog for the active language.
func (c *Calculator) Messages() i18n.Translations {
	return i18n.For(c.state.Language)
}

// Vehicles returns the selectable vehicles in catalog order.
func (c *Calculator) Vehicles() []models.Vehicle {
	return c.catalog.Vehicles()
}

// Calculate validates the current inputs and computes the fuel needed
// for the trip, rounded to two decimals. On failure it stores a
// localized error message instead; no error ever propagates.
func (c *Calculator) Calculate() {
	c.state.Result = nil
	c.state.ErrorMessage = ""

	fuel, err := c.compute()
	if err != nil {
		c.state.ErrorMessage = c.localize(err)
		return
	}
	c.state.Result = &fuel
}

func (c *Calculator) compute() (float64, error) {
	if c.state.StartKm == "" || c.state.EndKm == "" || c.state.VehicleID == "" {
		return 0, ErrMissingField
	}

	start, errStart := parseDistance(c.state.StartKm)
	end, errEnd := parseDistance(c.state.EndKm)
	if errStart != nil || errEnd != nil {
		return 0, ErrInvalidNumber
	}

	if end <= start {
		return 0, ErrInvalidRange
	}

	vehicle, err := c.catalog.Lookup(c.state.VehicleID)
	if err != nil {
		return 0, ErrUnknownVehicle
	}

	fuel := (end - start) / vehicle.KmPerLiter
	return math.Round(fuel*100) / 100, nil
}

// parseDistance parses an odometer reading. Non-finite values are
// rejected: ParseFloat accepts "NaN" and "Inf", but a NaN reading
// would slip past the end > start check.
func parseDistance(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

func (c *Calculator) localize(err error) string {
	msgs := c.Messages()
	switch {
	case errors.Is(err, ErrMissingField):
		return msgs.ErrMissingField
	case errors.Is(err, ErrInvalidNumber):
		return msgs.ErrInvalidNumber
	case errors.Is(err, ErrInvalidRange):
		return msgs.ErrInvalidRange
	default:
		return msgs.ErrUnknownVehicle
	}
}

// Reset clears all inputs and outputs back to defaults. The active
// language is preserved.
func (c *Calculator) Reset() {
	c.state = FormState{Language: c.state.Language}
}

// ToggleLanguage flips the active language and clears any displayed
// error, so stale text is not shown in the wrong language. Inputs and
// result are preserved.
func (c *Calculator) ToggleLanguage() {
	c.state.Language = c.state.Language.Toggle()
	c.state.ErrorMessage = ""
}

// TripDistance is the live distance preview: it reports the unrounded
// distance whenever both readings parse and end > start, without
// touching the form state.
func (c *Calculator) TripDistance() (float64, bool) {
	start, errStart := parseDistance(c.state.StartKm)
	end, errEnd := parseDistance(c.state.EndKm)
	if errStart != nil || errEnd != nil || end <= start {
		return 0, false
	}
	return end - start, true
}
