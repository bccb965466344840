package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/srg/bleadv/pkg/bleuuid"
	"github.com/srg/bleadv/pkg/gatt"
)

type lookupResult struct {
	Input          string `json:"input" yaml:"input"`
	Found          bool   `json:"found" yaml:"found"`
	gatt.Attribute `yaml:",inline"`
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [uuid...]",
		Short: "Look up known GATT attributes",
		Long: `Look up services, characteristics and descriptors by UUID or adopted key.

The registry holds the Bluetooth SIG adopted attributes and a few well-known
vendor profiles. --attributes adds entries from a YAML file:

  attributes:
    - uuid: 6e400001-b5a3-f393-e0a9-e50e24dcca9e
      name: Nordic UART Service
      type: service

--sig-file reads a Bluetooth SIG assigned-numbers file (service_uuids.yaml,
characteristic_uuids.yaml, descriptors.yaml); --sig-type names the type of
its entries.

Adopted entries take precedence over file entries with the same UUID.`,
		Example: `  bleadv lookup 180d 2a37 2902
  bleadv lookup --list --type descriptor
  bleadv lookup --sig-file service_uuids.yaml --sig-type service 1859`,
		RunE: runLookup,
	}

	cmd.Flags().String("attributes", "", "Additional attribute definitions (YAML)")
	cmd.Flags().String("sig-file", "", "Bluetooth SIG assigned-numbers file (YAML)")
	cmd.Flags().String("sig-type", "service", "Attribute type of --sig-file entries (service, characteristic, descriptor)")
	cmd.Flags().Bool("list", false, "List all known attributes")
	cmd.Flags().String("type", "", "With --list, only show this type (service, characteristic, descriptor)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
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

	list, _ := cmd.Flags().GetBool("list")
	if !list && len(args) == 0 {
		return fmt.Errorf("requires at least 1 uuid, or --list")
	}

	var typeFilter *gatt.AttributeType
	if s, _ := cmd.Flags().GetString("type"); s != "" {
		t, err := gatt.ParseAttributeType(s)
		if err != nil {
			return err
		}
		typeFilter = &t
	}

	for _, arg := range args {
		if _, err := bleuuid.Parse(arg); err != nil {
			return err
		}
	}

	var sig []sigSource
	if path, _ := cmd.Flags().GetString("sig-file"); path != "" {
		typeName, _ := cmd.Flags().GetString("sig-type")
		t, err := gatt.ParseAttributeType(typeName)
		if err != nil {
			return err
		}
		sig = append(sig, sigSource{path: path, typ: t})
	}

	cmd.SilenceUsage = true

	attributesFile := cfg.AttributesFile
	if cmd.Flags().Changed("attributes") {
		attributesFile, _ = cmd.Flags().GetString("attributes")
	}
	reg, err := loadRegistry(attributesFile, logger, sig...)
	if err != nil {
		return err
	}

	var results []lookupResult
	if list {
		reg.Range(func(a gatt.Attribute) bool {
			if typeFilter == nil || a.Type == *typeFilter {
				results = append(results, lookupResult{Input: bleuuid.Short(a.ID), Found: true, Attribute: a})
			}
			return true
		})
	}
	for _, arg := range args {
		id := bleuuid.MustParse(arg)
		a, ok := reg.Get(id)
		if !ok {
			a = gatt.Attribute{ID: id}
		}
		results = append(results, lookupResult{Input: arg, Found: ok, Attribute: a})
	}

	out := cmd.OutOrStdout()
	if format != "table" {
		return writeStructured(out, format, results)
	}

	st := newStyles(cmd)
	tw := newTable(out)
	st.writeHeader(tw, "UUID", "TYPE", "NAME")
	for _, r := range results {
		if !r.Found {
			fmt.Fprintf(tw, "%s\t-\t(unknown)\n", bleuuid.Short(r.ID))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", bleuuid.Short(r.ID), r.Type, st.accent.Sprint(r.Description))
	}
	return tw.Flush()
}
