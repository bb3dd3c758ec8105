package root

import (
	"fmt"

	"bensin/internal/calculator"
	"bensin/internal/catalog"
	"bensin/internal/displayer"
	"bensin/internal/i18n"
	"bensin/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Run(cmd *cobra.Command, args []string) {
	var cat *catalog.Catalog
	var err error
	if path := viper.GetString("vehicles"); path != "" {
		cat, err = catalog.Load(path)
	} else {
		cat, err = catalog.New(nil)
	}
	if err != nil {
		log.Fatal("failed to load vehicle catalog", zap.Error(err))
	}

	calc := calculator.New(cat, i18n.Parse(viper.GetString("lang")))

	if viper.GetBool("no-tui") {
		calculateOnce(calc)
	} else {
		d := displayer.New(calc)

		err := d.Run()
		if err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

// calculateOnce runs a single calculation from the CLI flags and
// prints the localized result or error. With no inputs given it lists
// the vehicle catalog instead.
func calculateOnce(calc *calculator.Calculator) {
	start := viper.GetString("start")
	end := viper.GetString("end")
	vehicle := viper.GetString("vehicle")

	if start == "" && end == "" && vehicle == "" {
		printCatalog(calc)
		return
	}

	calc.SetStartKm(start)
	calc.SetEndKm(end)
	calc.SetVehicleID(vehicle)
	calc.Calculate()

	msgs := calc.Messages()
	state := calc.State()
	if state.ErrorMessage != "" {
		fmt.Println(state.ErrorMessage)
		return
	}
	if dist, ok := calc.TripDistance(); ok {
		fmt.Printf(msgs.DistanceFormat+"\n", dist)
	}
	fmt.Printf(msgs.ResultFormat+"\n", *state.Result)
}

func printCatalog(calc *calculator.Calculator) {
	msgs := calc.Messages()
	fmt.Println(msgs.VehicleLabel + ":")
	for _, v := range calc.Vehicles() {
		fmt.Printf("- %s: "+msgs.VehicleFormat+"\n", v.ID, v.Name, v.KmPerLiter)
	}
}
