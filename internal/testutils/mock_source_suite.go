package testutils

import (
	"github.com/sirupsen/logrus"
	"github.com/srg/bleadv/pkg/scan"
	"github.com/stretchr/testify/suite"
)

// MockSourceSuite provides a reusable test suite backed by a MockSource.
//
// Configure the reports in SetupTest before calling the parent:
//
//	func (s *ScannerSuite) SetupTest() {
//	    s.WithReports(
//	        testutils.CreateMockReport("HeartRate1", "AA:BB:CC:DD:EE:FF", -40).Build(),
//	    )
//	    s.MockSourceSuite.SetupTest()
//	}
type MockSourceSuite struct {
	suite.Suite

	Helper *TestHelper
	Logger *logrus.Logger
	Source *MockSource

	reports []scan.Report
}

func (s *MockSourceSuite) SetupSuite() {
	s.Helper = NewTestHelper(s.T())
	s.Logger = s.Helper.Logger
}

// SetupTest creates a fresh source with the configured reports.
func (s *MockSourceSuite) SetupTest() {
	if s.Helper == nil {
		s.SetupSuite()
	}
	s.Helper.Hook.Reset()
	s.Source = NewMockSource(s.reports...)
}

func (s *MockSourceSuite) TearDownTest() {
	s.reports = nil
}

// WithReports sets the reports delivered by the next SetupTest.
func (s *MockSourceSuite) WithReports(reports ...scan.Report) {
	s.reports = append(s.reports, reports...)
}

// NewScanner creates a scanner reading from the suite's source.
func (s *MockSourceSuite) NewScanner() *scan.Scanner {
	return scan.NewScanner(s.Source, s.Logger)
}
