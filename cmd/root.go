package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags shared by the optimize and screen commands
	modelPath   string  // COBRA JSON model file
	catalogPath string  // YAML target catalog (empty = built-in fatty acid catalog)
	substrate   string  // carbon source preset: glucose, formate, acetate
	uptakeRate  float64 // substrate uptake override (mmol/gDW/h, 0 = preset default)
	cellFree    bool    // clamp biomass/maintenance for a cell-free system
	logLevel    string  // log verbosity level
	biomassID   string  // biomass reaction for growth-rate reporting
	outPath     string  // results CSV path
	summaryPath string  // run summary YAML path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "ecoli-fba",
	Short: "Flux-balance production optimizer and knockout screener for fatty-acid targets",
}

// init sets up shared CLI flags and subcommands
func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&modelPath, "model", "", "Path to COBRA JSON metabolic model")
	pf.StringVar(&catalogPath, "catalog", "", "Path to YAML target catalog (default: built-in fatty-acyl-CoA catalog)")
	pf.StringVar(&substrate, "substrate", "glucose", "Carbon source: glucose, formate or acetate")
	pf.Float64Var(&uptakeRate, "uptake", 0, "Substrate uptake rate in mmol/gDW/h (0 = substrate default)")
	pf.BoolVar(&cellFree, "cell-free", false, "Derive a cell-free system (biomass clamped, maintenance relaxed)")
	pf.StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	pf.StringVar(&biomassID, "biomass-reaction", "", "Biomass reaction ID for growth-rate reporting")
	pf.StringVar(&outPath, "out", "results.csv", "Results CSV output path")
	pf.StringVar(&summaryPath, "summary", "", "Run summary YAML output path (empty = skip)")

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(screenCmd)
}

// setupLogging applies the --log flag process-wide.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
