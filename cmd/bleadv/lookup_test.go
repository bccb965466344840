package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/srg/bleadv/internal/testutils"
	"github.com/stretchr/testify/suite"
)

type LookupCommandTestSuite struct {
	CommandTestSuite
}

func TestLookupCommandTestSuite(t *testing.T) {
	suite.Run(t, new(LookupCommandTestSuite))
}

func (s *LookupCommandTestSuite) TestLookup_Known() {
	// GOAL: Verify known keys resolve to their type and name, unknown keys are marked
	//
	// TEST SCENARIO: Look up 180d, 2a37, 2902 and 1234 → three named rows and one unknown row

	output, err := s.ExecuteCommand("lookup", "180d", "2a37", "2902", "1234")
	s.Require().NoError(err)

	out := squash(output)
	s.Assert().Contains(out, "UUID TYPE NAME")
	s.Assert().Contains(out, "180d service Heart Rate")
	s.Assert().Contains(out, "2a37 characteristic Heart Rate Measurement")
	s.Assert().Contains(out, "2902 descriptor Client Characteristic Configuration")
	s.Assert().Contains(out, "1234 - (unknown)")
}

func (s *LookupCommandTestSuite) TestLookup_JSON() {
	output, err := s.ExecuteCommand("lookup", "--format", "json", "180f", "1234")
	s.Require().NoError(err)

	testutils.NewJSONAsserter(s.T()).Assert(output, `[
		{
			"input": "180f",
			"found": true,
			"uuid": "0000180f-0000-1000-8000-00805f9b34fb",
			"description": "Battery Service",
			"type": "service"
		},
		{
			"input": "1234",
			"found": false,
			"uuid": "00001234-0000-1000-8000-00805f9b34fb"
		}
	]`)
}

func (s *LookupCommandTestSuite) TestLookup_ListByType() {
	// GOAL: Verify --list --type only lists attributes of that type
	//
	// TEST SCENARIO: List descriptors → CCCD present, no service rows

	output, err := s.ExecuteCommand("lookup", "--list", "--type", "descriptor")
	s.Require().NoError(err)

	out := squash(output)
	s.Assert().Contains(out, "2902 descriptor Client Characteristic Configuration")
	s.Assert().NotContains(out, " service ")
	s.Assert().NotContains(out, " characteristic ")
}

func (s *LookupCommandTestSuite) TestLookup_CustomAttributesDoNotOverrideAdopted() {
	// GOAL: Verify file entries add vendor attributes but never rename adopted ones
	//
	// TEST SCENARIO: File names 180d and a vendor UUID → 180d keeps its SIG name, vendor UUID resolves

	path := filepath.Join(s.T().TempDir(), "attrs.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`attributes:
  - uuid: "180d"
    name: Not Heart Rate
    type: service
  - uuid: 12345678-1234-5678-1234-56789abcdef0
    name: Acme Control
    type: characteristic
`), 0o600))

	output, err := s.ExecuteCommand("lookup", "--attributes", path, "180d", "12345678-1234-5678-1234-56789abcdef0")
	s.Require().NoError(err)

	out := squash(output)
	s.Assert().Contains(out, "180d service Heart Rate")
	s.Assert().NotContains(out, "Not Heart Rate")
	s.Assert().Contains(out, "12345678-1234-5678-1234-56789abcdef0 characteristic Acme Control")
}

func (s *LookupCommandTestSuite) TestLookup_SIGFile() {
	// GOAL: Verify assigned-numbers files add unknown keys and leave adopted names alone
	//
	// TEST SCENARIO: SIG file lists 1800 and 1859 as services → 1800 keeps its adopted name, 1859 resolves from the file

	path := filepath.Join(s.T().TempDir(), "service_uuids.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`uuids:
  - uuid: 0x1800
    name: GAP
    id: org.bluetooth.service.gap
  - uuid: 0x1859
    name: Mesh Proxy Solicitation
    id: org.bluetooth.service.mesh_proxy_solicitation
`), 0o600))

	output, err := s.ExecuteCommand("lookup", "--sig-file", path, "--sig-type", "service", "1800", "1859")
	s.Require().NoError(err)

	out := squash(output)
	s.Assert().Contains(out, "1800 service Generic Access")
	s.Assert().Contains(out, "1859 service Mesh Proxy Solicitation")
	s.Assert().NotContains(out, "GAP")
}

func (s *LookupCommandTestSuite) TestLookup_Errors() {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no arguments", []string{"lookup"}, "requires at least 1 uuid, or --list"},
		{"bad type", []string{"lookup", "--list", "--type", "widget"}, "invalid attribute type"},
		{"bad uuid", []string{"lookup", "xyz"}, "invalid uuid"},
		{"missing file", []string{"lookup", "--attributes", "/nonexistent/attrs.yaml", "180d"}, "failed to load attributes"},
		{"missing sig file", []string{"lookup", "--sig-file", "/nonexistent/service_uuids.yaml", "180d"}, "failed to load assigned numbers"},
		{"bad sig type", []string{"lookup", "--sig-file", "/nonexistent/service_uuids.yaml", "--sig-type", "widget", "180d"}, "invalid attribute type"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.ExecuteCommand(tt.args...)
			s.Require().Error(err)
			s.Assert().Contains(err.Error(), tt.wantErr)
		})
	}
}
