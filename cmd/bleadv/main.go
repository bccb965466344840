package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"

	_ "github.com/srg/bleadv/internal/platform/goble"
	_ "github.com/srg/bleadv/internal/platform/tinygo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// formatVersion adds 'v' prefix if version starts with a digit
func formatVersion(ver string) string {
	if len(ver) > 0 && unicode.IsDigit(rune(ver[0])) {
		return "v" + ver
	}
	return ver
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// from leaking between executions.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bleadv",
		Short: "Bluetooth Low Energy advertising toolkit",
		Long: `Bluetooth Low Energy (BLE) advertising toolkit that provides:

- Decode raw advertising payloads into structured records
- Expand 16-bit adopted keys and device addresses into 128-bit UUIDs
- Look up known GATT services, characteristics and descriptors
- Scan nearby devices with name, company and service filters`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", formatVersion(version), commit, date),
		// Silence Cobra's "Error:" prefix - main() prints clean errors
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newUUIDCmd())
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newScanCmd())

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/bleadv/config.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Add -v as a short flag for --version
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Ctrl+C is a normal exit, not an error - exit silently
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", FormatUserError(err))
		os.Exit(1)
	}
}
