package main

import (
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/srg/bleadv/pkg/bleuuid"
)

// uuidResult is one converted argument.
type uuidResult struct {
	Input    string `json:"input" yaml:"input"`
	UUID     string `json:"uuid" yaml:"uuid"`
	Short    string `json:"short" yaml:"short"`
	Reserved bool   `json:"reserved" yaml:"reserved"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
}

func newUUIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid <key|uuid|address>...",
		Short: "Expand adopted keys and device addresses into 128-bit UUIDs",
		Long: `Expand 16-bit adopted keys ("180d"), 32-bit keys and full UUIDs into their
canonical 128-bit form on the Bluetooth Base UUID.

With --address each argument is a 6-byte device address (AA:BB:CC:DD:EE:FF)
mapped to the UUID used as its device identifier.`,
		Example: `  bleadv uuid 180d 2902
  bleadv uuid --address AA:BB:CC:DD:EE:FF`,
		Args: cobra.MinimumNArgs(1),
		RunE: runUUID,
	}

	cmd.Flags().Bool("address", false, "Arguments are device addresses")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

func runUUID(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := formatFlag(cmd, cfg.OutputFormat)
	if err != nil {
		return err
	}
	logger, err := configureLogger(cmd)
	if err != nil {
		return err
	}
	isAddress, _ := cmd.Flags().GetBool("address")

	ids := make([]uuid.UUID, len(args))
	for i, arg := range args {
		if isAddress {
			ids[i], err = addressUUID(arg)
		} else {
			ids[i], err = bleuuid.Parse(arg)
		}
		if err != nil {
			return err
		}
	}

	cmd.SilenceUsage = true

	reg, err := loadRegistry(cfg.AttributesFile, logger)
	if err != nil {
		return err
	}

	results := make([]uuidResult, len(ids))
	for i, id := range ids {
		results[i] = uuidResult{
			Input:    args[i],
			UUID:     id.String(),
			Short:    bleuuid.Short(id),
			Reserved: bleuuid.IsReservedKey(id),
		}
		if !isAddress {
			if a, ok := reg.Get(id); ok {
				results[i].Name = a.Description
			}
		}
	}

	out := cmd.OutOrStdout()
	if format != "table" {
		return writeStructured(out, format, results)
	}

	st := newStyles(cmd)
	tw := newTable(out)
	st.writeHeader(tw, "INPUT", "UUID", "NAME")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Input, st.accent.Sprint(r.UUID), r.Name)
	}
	return tw.Flush()
}

func addressUUID(s string) (uuid.UUID, error) {
	mac, err := net.ParseMAC(s)
	if err != nil {
		return uuid.Nil, &bleuuid.InvalidArgumentError{
			Argument: "address",
			Expected: "AA:BB:CC:DD:EE:FF",
			Got:      fmt.Sprintf("%q", s),
		}
	}
	return bleuuid.AddressToUUID(mac)
}
