package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	q931 "github.com/rgoward/q931"
)

func init() {
	cmd := &cobra.Command{
		Use:   "trunk-config <path.yaml>",
		Short: "Validate and summarize a trunk YAML configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrunkConfigCmd,
	}
	RootCmd.AddCommand(cmd)
}

func runTrunkConfigCmd(_ *cobra.Command, args []string) error {
	ConfigureVerbosity()

	cfg, err := q931.LoadConfig(args[0])
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	bChannels := 0
	for _, ct := range cfg.Channels {
		if ct == q931.ChannelB {
			bChannels++
		}
	}

	fmt.Printf("dialect:      %s\n", cfg.Dialect)
	fmt.Printf("role:         %s\n", cfg.Role)
	fmt.Printf("channels:     %d (B=%d)\n", len(cfg.Channels), bChannels)
	fmt.Printf("max-calls:    %d\n", cfg.MaxCalls)
	fmt.Printf("auto-acks:    connect=%v setup=%v restart=%v service=%v\n",
		cfg.AutoConnectAck, cfg.AutoSetupAck, cfg.AutoRestartAck, cfg.AutoServiceAck)
	fmt.Printf("overlap-ms:   %d\n", cfg.OverlapDigitTimeoutMS)
	return nil
}
