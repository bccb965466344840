package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/gatt"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode raw advertising payloads",
		Long: `Decode one or more raw BLE advertising payloads given as hex.

Whitespace, ':' and '-' separators and a leading 0x are ignored, so
"02 01 06", "02:01:06" and "0x020106" are the same payload.`,
		Example: `  bleadv decode 0201060a094865617274526174650303 0d18
  bleadv decode --raw --format json "02 01 06 03 03 0f 18"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDecode,
	}

	cmd.Flags().StringP("format", "f", "table", "Output format (table, json, yaml)")
	cmd.Flags().Bool("raw", false, "Include the raw AD structures")
	cmd.Flags().String("attributes", "", "Additional attribute definitions (YAML) for service names")
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
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
	withRaw, _ := cmd.Flags().GetBool("raw")

	payloads := make([][]byte, len(args))
	for i, arg := range args {
		if payloads[i], err = parseHexPayload(arg); err != nil {
			return err
		}
	}

	// All arguments validated - don't show usage on runtime errors
	cmd.SilenceUsage = true

	attributesFile := cfg.AttributesFile
	if cmd.Flags().Changed("attributes") {
		attributesFile, _ = cmd.Flags().GetString("attributes")
	}
	reg, err := loadRegistry(attributesFile, logger)
	if err != nil {
		return err
	}

	advs := make([]*advertisement.Advertisement, len(payloads))
	for i, p := range payloads {
		adv, err := advertisement.Decode(p)
		if err != nil {
			return fmt.Errorf("payload %d: %w", i+1, err)
		}
		advs[i] = adv
	}

	out := cmd.OutOrStdout()
	if format != "table" {
		views := make([]advertisement.View, len(advs))
		for i, a := range advs {
			views[i] = advertisement.NewView(a, withRaw)
		}
		if len(views) == 1 {
			return writeStructured(out, format, views[0])
		}
		return writeStructured(out, format, views)
	}

	st := newStyles(cmd)
	for i, a := range advs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := displayAdvertisement(out, st, reg, a, withRaw); err != nil {
			return err
		}
	}
	return nil
}

// parseHexPayload accepts hex with optional separators and 0x prefix.
func parseHexPayload(s string) ([]byte, error) {
	cleaned := strings.NewReplacer(" ", "", ":", "", "-", "", "\t", "").Replace(strings.TrimSpace(s))
	cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "0x"), "0X")
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidHex, s, err)
	}
	return b, nil
}

func displayAdvertisement(w io.Writer, st styles, reg *gatt.Registry, a *advertisement.Advertisement, withRaw bool) error {
	tw := newTable(w)
	st.writeHeader(tw, "FIELD", "VALUE")

	row := func(label, value string) {
		fmt.Fprintf(tw, "%s\t%s\n", st.label.Sprint(label), value)
	}

	if a.HasDeviceName {
		row("Name", st.accent.Sprint(a.DeviceName))
	}
	if a.Flags != 0 {
		row("Flags", a.Flags.String())
	}
	for _, s := range a.Services {
		row("Service", describe(reg, s))
	}
	for _, s := range a.SolicitedServices {
		row("Solicited", describe(reg, s))
	}
	if a.ServiceData != nil {
		for pair := a.ServiceData.Oldest(); pair != nil; pair = pair.Next() {
			row("Service Data", fmt.Sprintf("%s: %s", describe(reg, pair.Key), hex.EncodeToString(pair.Value)))
		}
	}
	for _, md := range a.ManufacturerData {
		value := hex.EncodeToString(md.Data)
		if md.CompanyID != nil {
			value = fmt.Sprintf("%s: %s", advertisement.CompanyLabel(*md.CompanyID), value)
		}
		row("Manufacturer", value)
		if decoded, err := md.Decoded(); err == nil && decoded != nil {
			row("", fmt.Sprintf("%v", decoded))
		}
	}
	if a.HasTxPowerLevel {
		row("TX Power", fmt.Sprintf("%d dBm", a.TxPowerLevel))
	}
	if a.HasAppearance {
		row("Appearance", fmt.Sprintf("0x%04X", a.Appearance))
	}
	if a.URI != "" {
		row("URI", a.URI)
	}

	if withRaw {
		fmt.Fprintln(tw)
		st.writeHeader(tw, "TYPE", "LENGTH", "DATA")
		for _, item := range a.RawData {
			fmt.Fprintf(tw, "%s (0x%02X)\t%d\t%s\n", item.Type, uint8(item.Type), len(item.Data), hex.EncodeToString(item.Data))
		}
	}

	return tw.Flush()
}
