package testutils

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

type TestHelper struct {
	T      *testing.T
	Logger *logrus.Logger
	Hook   *logtest.Hook
}

// NewTestHelper creates a test helper with a discarding logger whose entries
// are captured by Hook.
func NewTestHelper(t *testing.T) *TestHelper {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel) // enable debug logs to track execution flow
	return &TestHelper{
		T:      t,
		Logger: logger,
		Hook:   hook,
	}
}

// EntriesAt returns the captured log entries of the given level.
func (h *TestHelper) EntriesAt(level logrus.Level) []*logrus.Entry {
	var out []*logrus.Entry
	for _, e := range h.Hook.AllEntries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func CreateMockReport(name, address string, rssi int) *ReportBuilder {
	return NewReportBuilder().WithName(name).WithAddress(address).WithRSSI(rssi)
}

func CreateMockReportFromJSON(jsonStrFmt string, args ...interface{}) *ReportBuilder {
	return NewReportBuilder().FromJSON(jsonStrFmt, args...)
}
