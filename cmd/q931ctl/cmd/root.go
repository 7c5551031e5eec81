package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is the CLI's entry point; exported so q931ctl can be extended
// with new subcommands without touching the engine itself (mirrors
// ptpcheck's RootCmd pattern).
var RootCmd = &cobra.Command{
	Use:   "q931ctl",
	Short: "Inspect Q.931/Q.932 captures and trunk configuration",
}

var rootVerboseFlag bool

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
}

// ConfigureVerbosity sets log verbosity from the parsed flags. Every
// subcommand calls this before doing real work.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute runs the CLI, printing any top-level error and exiting
// non-zero.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
