package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	q931 "github.com/rgoward/q931"
	"github.com/rgoward/q931/dialects"
)

var decodeDialectFlag string

func init() {
	cmd := &cobra.Command{
		Use:   "decode <hex-frame>",
		Short: "Decode a captured Q.931/Q.932 frame and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecodeCmd,
	}
	cmd.Flags().StringVar(&decodeDialectFlag, "dialect", "q931", "dialect to decode with: q931, national, dms, 5ess")
	RootCmd.AddCommand(cmd)
}

func runDecodeCmd(_ *cobra.Command, args []string) error {
	ConfigureVerbosity()

	raw := strings.Map(func(r rune) rune {
		if r == ' ' || r == ':' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, args[0])
	data, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("decoding hex frame: %w", err)
	}

	d, err := dialectByName(decodeDialectFlag)
	if err != nil {
		return err
	}

	msg, err := q931.UnpackMessage(d, data)
	if err != nil {
		return fmt.Errorf("unpacking message: %w", err)
	}
	fmt.Print(msg.String())
	return nil
}

func dialectByName(name string) (*q931.Dialect, error) {
	switch strings.ToLower(name) {
	case "q931", "generic", "":
		return q931.NewGenericDialect(), nil
	case "national":
		return dialects.National(), nil
	case "dms":
		return dialects.DMS(), nil
	case "5ess":
		return dialects.FiveESS(), nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", name)
	}
}
