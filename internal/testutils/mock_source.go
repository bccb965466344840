package testutils

import (
	"context"
	"sync"

	"github.com/srg/bleadv/pkg/scan"
	"github.com/stretchr/testify/mock"
)

// MockSource is a scan.Source that replays a fixed set of reports and records
// calls through testify/mock.
//
// Unless WaitForCancel is set, Scan returns right after the last report; set
// it to exercise context handling the way a live radio behaves.
type MockSource struct {
	mock.Mock

	mu            sync.Mutex
	reports       []scan.Report
	WaitForCancel bool
}

// NewMockSource creates a source replaying reports and expecting any Scan call.
func NewMockSource(reports ...scan.Report) *MockSource {
	m := &MockSource{reports: reports}
	m.On("Scan", mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}

// SetReports replaces the reports delivered by later scans.
func (m *MockSource) SetReports(reports ...scan.Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = reports
}

func (m *MockSource) Scan(ctx context.Context, allowDup bool, handler func(scan.Report)) error {
	args := m.Called(ctx, allowDup)
	if err := args.Error(0); err != nil {
		return err
	}

	m.mu.Lock()
	reports := append([]scan.Report(nil), m.reports...)
	m.mu.Unlock()

	for _, r := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		handler(r)
	}

	if m.WaitForCancel {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

var _ scan.Source = (*MockSource)(nil)
