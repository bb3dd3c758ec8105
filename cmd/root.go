package cmd

import (
	"fmt"
	"os"

	"bensin/internal/cmd/root"
	"bensin/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use: "bensin",
	Run: root.Run,
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().Bool("no-tui", false, "Run without TUI (for testing)")
	rootCmd.PersistentFlags().String("lang", "id", "UI language (id or en)")
	rootCmd.PersistentFlags().String("vehicles", "", "Path to a vehicle catalog JSON file (overrides the built-in catalog)")
	rootCmd.PersistentFlags().String("start", "", "Start odometer reading in km (no-tui mode)")
	rootCmd.PersistentFlags().String("end", "", "End odometer reading in km (no-tui mode)")
	rootCmd.PersistentFlags().String("vehicle", "", "Vehicle id (no-tui mode)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("no-tui", rootCmd.PersistentFlags().Lookup("no-tui"))
	viper.BindPFlag("lang", rootCmd.PersistentFlags().Lookup("lang"))
	viper.BindPFlag("vehicles", rootCmd.PersistentFlags().Lookup("vehicles"))
	viper.BindPFlag("start", rootCmd.PersistentFlags().Lookup("start"))
	viper.BindPFlag("end", rootCmd.PersistentFlags().Lookup("end"))
	viper.BindPFlag("vehicle", rootCmd.PersistentFlags().Lookup("vehicle"))

	// Set default values
	viper.SetDefault("debug", false)
	viper.SetDefault("no-tui", false)
	viper.SetDefault("lang", "id")
	viper.SetDefault("vehicles", "")
	viper.SetDefault("start", "")
	viper.SetDefault("end", "")
	viper.SetDefault("vehicle", "")
}

func initLogger() {
	log.InitLogger(viper.GetBool("debug"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
