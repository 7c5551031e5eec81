package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	q931 "github.com/rgoward/q931"
	"github.com/rgoward/q931/dialects"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects and their state-table coverage",
		RunE:  runDialectsCmd,
	}
	RootCmd.AddCommand(cmd)
}

func runDialectsCmd(_ *cobra.Command, _ []string) error {
	ConfigureVerbosity()

	rows := []struct {
		name string
		d    *q931.Dialect
	}{
		{"Q931", q931.NewGenericDialect()},
		{"National", dialects.National()},
		{"DMS", dialects.DMS()},
		{"5ESS", dialects.FiveESS()},
	}

	fmt.Printf("%-10s %8s %8s %12s\n", "DIALECT", "IEs", "MESSAGES", "LEGAL-ROWS")
	for _, r := range rows {
		fmt.Printf("%-10s %8d %8d %12d\n", r.name, r.d.IECount(), r.d.MessageCount(), r.d.LegalCount())
	}
	return nil
}
