package displayer

import (
	"fmt"

	"bensin/internal/calculator"
	"bensin/internal/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Displayer handles the TUI around a Calculator. It exposes a single
// Run method; all state lives in the calculator, the displayer only
// renders it and forwards user actions.
type Displayer struct {
	app      *tview.Application
	calc     *calculator.Calculator
	vehicles []models.Vehicle

	// UI elements cached for updates
	titleText    *tview.TextView
	subtitleText *tview.TextView
	distanceText *tview.TextView
	outputText   *tview.TextView
	helpText     *tview.TextView
	startField   *tview.InputField
	endField     *tview.InputField
	vehicleDrop  *tview.DropDown
	form         *tview.Form
}

func New(calc *calculator.Calculator) *Displayer {
	return &Displayer{
		app:      tview.NewApplication(),
		calc:     calc,
		vehicles: calc.Vehicles(),
	}
}

func (d *Displayer) Run() error {
	// header area: title, subtitle
	d.titleText = tview.NewTextView().SetTextAlign(tview.AlignCenter).SetDynamicColors(true)
	d.subtitleText = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	d.helpText = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	headerFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	headerFlex.AddItem(d.titleText, 1, 0, false)
	headerFlex.AddItem(d.subtitleText, 1, 0, false)

	// output area: live distance preview, result or error
	d.distanceText = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	d.outputText = tview.NewTextView().SetTextAlign(tview.AlignCenter).SetDynamicColors(true)

	form := d.buildForm()

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(headerFlex, 2, 0, false)
	mainFlex.AddItem(form, 0, 1, true)
	mainFlex.AddItem(d.distanceText, 1, 0, false)
	mainFlex.AddItem(d.outputText, 1, 0, false)
	mainFlex.AddItem(d.helpText, 1, 0, false)

	d.app.SetRoot(mainFlex, true)
	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			d.app.Stop()
			return nil
		}
		return event
	})

	d.applyLanguage()

	// central BeforeDraw to update derived text
	d.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		d.updateValues()
		return false
	})

	return d.app.Run()
}

func (d *Displayer) buildForm() *tview.Form {
	d.startField = tview.NewInputField().SetFieldWidth(12).
		SetChangedFunc(func(text string) {
			d.calc.SetStartKm(text)
		})
	d.endField = tview.NewInputField().SetFieldWidth(12).
		SetChangedFunc(func(text string) {
			d.calc.SetEndKm(text)
		})
	d.vehicleDrop = tview.NewDropDown()

	form := tview.NewForm()
	form.AddFormItem(d.startField)
	form.AddFormItem(d.endField)
	form.AddFormItem(d.vehicleDrop)
	form.AddButton("", func() {
		d.calc.Calculate()
	})
	form.AddButton("", func() {
		d.calc.Reset()
		d.startField.SetText("")
		d.endField.SetText("")
		d.vehicleDrop.SetCurrentOption(0)
	})
	form.AddButton("", func() {
		d.calc.ToggleLanguage()
		d.applyLanguage()
	})

	d.form = form
	return form
}

// vehicleSelected maps a dropdown index back to a catalog id. Index 0
// is the "none selected" placeholder entry.
func (d *Displayer) vehicleSelected(text string, index int) {
	if index <= 0 {
		d.calc.SetVehicleID("")
		return
	}
	d.calc.SetVehicleID(d.vehicles[index-1].ID)
}

// applyLanguage rewrites every widget label from the active text
// catalog. Field contents and the dropdown selection are preserved.
func (d *Displayer) applyLanguage() {
	msgs := d.calc.Messages()

	d.startField.SetLabel(msgs.StartLabel).SetPlaceholder(msgs.DistancePlaceholder)
	d.endField.SetLabel(msgs.EndLabel).SetPlaceholder(msgs.DistancePlaceholder)

	options := make([]string, 0, len(d.vehicles)+1)
	options = append(options, msgs.VehiclePlaceholder)
	for _, v := range d.vehicles {
		options = append(options, fmt.Sprintf(msgs.VehicleFormat, v.Name, v.KmPerLiter))
	}
	current, _ := d.vehicleDrop.GetCurrentOption()
	d.vehicleDrop.SetLabel(msgs.VehicleLabel).SetOptions(options, d.vehicleSelected)
	if current < 0 {
		current = 0
	}
	d.vehicleDrop.SetCurrentOption(current)

	d.form.GetButton(0).SetLabel(msgs.CalculateButton)
	d.form.GetButton(1).SetLabel(msgs.ResetButton)
	d.form.GetButton(2).SetLabel(msgs.LanguageButton)
}

func (d *Displayer) updateValues() {
	msgs := d.calc.Messages()
	state := d.calc.State()

	d.titleText.SetText(fmt.Sprintf("[yellow]%s[white]", msgs.Title))
	d.subtitleText.SetText(msgs.Subtitle)
	d.helpText.SetText(msgs.Help)

	if dist, ok := d.calc.TripDistance(); ok {
		d.distanceText.SetText(fmt.Sprintf(msgs.DistanceFormat, dist))
	} else {
		d.distanceText.SetText("")
	}

	switch {
	case state.ErrorMessage != "":
		d.outputText.SetText(fmt.Sprintf("[red]%s[white]", state.ErrorMessage))
	case state.Result != nil:
		d.outputText.SetText(fmt.Sprintf("[green]"+msgs.ResultFormat+"[white]", *state.Result))
	default:
		d.outputText.SetText("")
	}
}
