package main

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/srg/bleadv/internal/testutils"
	"github.com/srg/bleadv/pkg/scan"
)

// Test device addresses for consistent mock device identification
const (
	TestDeviceAddress1 = "AA:BB:CC:DD:EE:01"
	TestDeviceAddress2 = "AA:BB:CC:DD:EE:02"
)

// CommandTestSuite extends MockSourceSuite with command testing utilities.
// All cmd/bleadv test suites should embed this instead of MockSourceSuite.
type CommandTestSuite struct {
	testutils.MockSourceSuite

	originalSourceFactory func(string, *logrus.Logger) (scan.Source, error)
	requestedBackend      string
	stderr                *bytes.Buffer
}

func (s *CommandTestSuite) SetupTest() {
	s.MockSourceSuite.SetupTest()

	// Keep a user's real config file out of the tests
	home := s.T().TempDir()
	s.T().Setenv("HOME", home)
	s.T().Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	s.originalSourceFactory = newScanSource
	s.requestedBackend = ""
	newScanSource = func(name string, _ *logrus.Logger) (scan.Source, error) {
		s.requestedBackend = name
		return s.Source, nil
	}
}

func (s *CommandTestSuite) TearDownTest() {
	newScanSource = s.originalSourceFactory
	s.MockSourceSuite.TearDownTest()
}

// ExecuteCommand runs a fresh root command with args and returns what it
// wrote to stdout. Stderr is kept in Stderr().
func (s *CommandTestSuite) ExecuteCommand(args ...string) (string, error) {
	out := new(bytes.Buffer)
	s.stderr = new(bytes.Buffer)

	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(s.stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// Stderr returns what the last ExecuteCommand wrote to stderr.
func (s *CommandTestSuite) Stderr() string {
	if s.stderr == nil {
		return ""
	}
	return s.stderr.String()
}

// squash collapses whitespace runs so table assertions do not depend on column padding.
func squash(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Join(lines, "\n")
}
