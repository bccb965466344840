package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/bleadv/internal/groutine"
	"github.com/srg/bleadv/internal/platform"
	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/gatt"
	"github.com/srg/bleadv/pkg/scan"
)

// newScanSource opens the platform backend; replaced in tests.
var newScanSource = platform.NewSource

const watchRefreshInterval = 250 * time.Millisecond

// peripheralView is the serializable form of a scan.Peripheral.
type peripheralView struct {
	ID            string             `json:"id" yaml:"id"`
	Address       string             `json:"address" yaml:"address"`
	RandomAddress *bool              `json:"random_address,omitempty" yaml:"random_address,omitempty"`
	RSSI          int                `json:"rssi" yaml:"rssi"`
	Connectable   bool               `json:"connectable" yaml:"connectable"`
	LastSeen      time.Time          `json:"last_seen" yaml:"last_seen"`
	Advertisement advertisement.View `json:"advertisement" yaml:"advertisement"`
}

func newPeripheralView(p scan.Peripheral) peripheralView {
	return peripheralView{
		ID:            p.DeviceID.String(),
		Address:       p.Address,
		RandomAddress: p.AddressIsRandom,
		RSSI:          p.RSSI,
		Connectable:   p.Connectable,
		LastSeen:      p.LastSeen,
		Advertisement: advertisement.NewView(p.Advertisement, false),
	}
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan for advertising BLE devices",
		Long: `Scan for Bluetooth Low Energy devices in the vicinity and show what they advertise.

Filters combine with AND: --name must match the complete advertised name,
--company matches the company identifier of any manufacturer data record,
and a device passes --service when it advertises at least one of the
listed services. Scans are capped at 30s; --duration 0 scans until Ctrl+C.`,
		Example: `  bleadv scan
  bleadv scan --service 180d --service 180f --unique
  bleadv scan --company 0x004C --format json
  bleadv scan --watch --duration 0`,
		Args: cobra.NoArgs,
		RunE: runScan,
	}

	cmd.Flags().DurationP("duration", "d", scan.DefaultScanTimeout, "Scan duration (0 scans until interrupted)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json, yaml)")
	cmd.Flags().String("name", "", "Only devices advertising exactly this complete name")
	cmd.Flags().String("company", "", "Only devices with manufacturer data from this company ID (e.g. 0x004C)")
	cmd.Flags().StringSliceP("service", "s", nil, "Only devices advertising any of these services")
	cmd.Flags().Bool("unique", false, "Report each device once, ignoring repeat broadcasts")
	cmd.Flags().String("mode", "", "Scan mode (balanced, high-power, low-power)")
	cmd.Flags().String("backend", "", fmt.Sprintf("BLE backend (%s, %s)", platform.Auto, strings.Join(platform.Backends(), ", ")))
	cmd.Flags().String("attributes", "", "Additional attribute definitions (YAML) for service names")
	cmd.Flags().BoolP("watch", "w", false, "Print devices as they are discovered")
	return cmd
}

// parseCompanyID accepts decimal or 0x-prefixed hex.
func parseCompanyID(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid company ID %q: must be a 16-bit number such as 0x004C", s)
	}
	return uint16(v), nil
}

// buildScanFilter translates the filter flags.
func buildScanFilter(cmd *cobra.Command) (scan.Filter, error) {
	b := scan.NewFilterBuilder()

	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		b.SetAdvertisedDeviceName(name)
	}
	if s, _ := cmd.Flags().GetString("company"); s != "" {
		id, err := parseCompanyID(s)
		if err != nil {
			return scan.Filter{}, err
		}
		b.SetAdvertisedManufacturerCompanyID(id)
	}
	services, _ := cmd.Flags().GetStringSlice("service")
	for _, s := range services {
		if err := b.AddAdvertisedServiceString(s); err != nil {
			return scan.Filter{}, fmt.Errorf("invalid service UUID: %w", err)
		}
	}
	unique, _ := cmd.Flags().GetBool("unique")
	b.SetIgnoreRepeatBroadcasts(unique)

	return b.Build(), nil
}

func runScan(cmd *cobra.Command, _ []string) error {
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

	filter, err := buildScanFilter(cmd)
	if err != nil {
		return err
	}

	mode := cfg.Mode()
	if s, _ := cmd.Flags().GetString("mode"); s != "" {
		if mode, err = scan.ParseMode(s); err != nil {
			return err
		}
	}

	watch, _ := cmd.Flags().GetBool("watch")
	duration := cfg.ScanTimeout
	if cmd.Flags().Changed("duration") {
		duration, _ = cmd.Flags().GetDuration("duration")
	} else if watch {
		// For watch mode, default to indefinite scan if no duration specified
		duration = 0
	}
	if clamped := scan.ClampDuration(duration); clamped != duration {
		logger.WithFields(logrus.Fields{
			"requested": duration,
			"used":      clamped,
		}).Warn("Scan duration out of range, clamping")
		duration = clamped
	}

	backend := cfg.Backend
	if b, _ := cmd.Flags().GetString("backend"); b != "" {
		backend = b
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

	src, err := newScanSource(backend, logger)
	if err != nil {
		return fmt.Errorf("failed to open BLE backend: %w", err)
	}
	scanner := scan.NewScanner(src, logger)

	settings := scan.Settings{
		Filter:                 filter,
		IgnoreRepeatBroadcasts: cfg.IgnoreRepeatBroadcasts,
		Mode:                   mode,
		Duration:               duration,
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Listen for Ctrl+C to cancel
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	groutine.Go(ctx, "scan-signal-watcher", func(ctx context.Context) {
		select {
		case <-sigCh:
			fmt.Fprintln(cmd.ErrOrStderr(), "\nCtrl+C pressed, cancelling scan...")
			cancel()
		case <-ctx.Done():
		}
	})

	out := cmd.OutOrStdout()
	st := newStyles(cmd)

	var peripherals map[string]scan.Peripheral
	if watch {
		peripherals, err = runWatchScan(ctx, scanner, settings, out, reg)
	} else {
		peripherals, err = runSingleScan(ctx, cmd.ErrOrStderr(), scanner, settings)
	}
	if err != nil {
		return err
	}

	entries := sortedPeripherals(peripherals)
	if format != "table" {
		views := make([]peripheralView, len(entries))
		for i, p := range entries {
			views[i] = newPeripheralView(p)
		}
		return writeStructured(out, format, views)
	}
	return displayPeripheralsTable(out, st, reg, entries)
}

func runSingleScan(ctx context.Context, progressOut io.Writer, scanner *scan.Scanner, settings scan.Settings) (map[string]scan.Peripheral, error) {
	if isTerminal(progressOut) {
		progress := NewProgressPrinter(progressOut, "Scanning for BLE devices", "Scanning", settings.Duration, "Processing results")
		progress.Start()
		defer progress.Stop()
		scanner.OnProgress(progress.Callback())
	}
	return scanner.Scan(ctx, settings, nil)
}

// runWatchScan prints one line per discovery event until the scan ends.
func runWatchScan(ctx context.Context, scanner *scan.Scanner, settings scan.Settings, out io.Writer, reg *gatt.Registry) (map[string]scan.Peripheral, error) {
	type result struct {
		peripherals map[string]scan.Peripheral
		err         error
	}
	done := make(chan result, 1)
	groutine.Go(ctx, "scan-watch", func(ctx context.Context) {
		p, err := scanner.Scan(ctx, settings, nil)
		done <- result{p, err}
	})

	printEvents := func() {
		for _, ev := range scanner.DrainEvents() {
			p := ev.Peripheral
			fmt.Fprintf(out, "%-8s %-20s %-17s %4d dBm  %s\n",
				strings.ToUpper(ev.Type.String()), displayName(p), p.Address, p.RSSI, serviceSummary(reg, p))
		}
	}

	ticker := time.NewTicker(watchRefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case r := <-done:
			printEvents()
			if n := scanner.OverwrittenEvents(); n > 0 {
				fmt.Fprintf(out, "(%d events dropped)\n", n)
			}
			fmt.Fprintln(out)
			return r.peripherals, r.err
		case <-ticker.C:
			printEvents()
		}
	}
}

// sortedPeripherals orders by name, unnamed devices last, then by address.
func sortedPeripherals(m map[string]scan.Peripheral) []scan.Peripheral {
	list := make([]scan.Peripheral, 0, len(m))
	for _, p := range m {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		ni, nj := list[i].Name(), list[j].Name()
		if (ni == "") != (nj == "") {
			return ni != ""
		}
		if ni != nj {
			return ni < nj
		}
		return list[i].Address < list[j].Address
	})
	return list
}

func displayName(p scan.Peripheral) string {
	name := p.Name()
	if name == "" {
		return "(unknown)"
	}
	if r := []rune(name); len(r) > 20 {
		name = string(r[:17]) + "..."
	}
	return name
}

func serviceSummary(reg *gatt.Registry, p scan.Peripheral) string {
	if p.Advertisement == nil {
		return ""
	}
	parts := make([]string, 0, len(p.Advertisement.Services))
	for _, s := range p.Advertisement.Services {
		parts = append(parts, describe(reg, s))
	}
	return strings.Join(parts, ", ")
}

func companySummary(p scan.Peripheral) string {
	if p.Advertisement == nil {
		return ""
	}
	ids := p.Advertisement.CompanyIDs()
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, advertisement.CompanyLabel(id))
	}
	return strings.Join(parts, ", ")
}

func displayPeripheralsTable(w io.Writer, st styles, reg *gatt.Registry, entries []scan.Peripheral) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No devices discovered")
		return nil
	}

	tw := newTable(w)
	st.writeHeader(tw, "NAME", "ADDRESS", "RSSI", "SERVICES", "COMPANY", "LAST SEEN")
	for _, p := range entries {
		address := p.Address
		if p.AddressIsRandom != nil && *p.AddressIsRandom {
			address += " (random)"
		}
		lastSeen := time.Since(p.LastSeen).Truncate(time.Second)
		fmt.Fprintf(tw, "%s\t%s\t%d dBm\t%s\t%s\t%s ago\n",
			st.accent.Sprint(displayName(p)), address, p.RSSI, serviceSummary(reg, p), companySummary(p), lastSeen)
	}
	return tw.Flush()
}

