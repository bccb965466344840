//go:build darwin || linux || windows

// Package tinygo is the tinygo.org/x/bluetooth backed scan.Source.
package tinygo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/srg/bleadv/internal/groutine"
	"github.com/srg/bleadv/internal/platform"
	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/scan"
	"tinygo.org/x/bluetooth"
)

// Name is the backend name used with platform.NewSource.
const Name = "tinygo"

func init() {
	platform.Register(Name, 10, func(logger *logrus.Logger) (scan.Source, error) {
		return NewSource(logger)
	})
}

// Source scans with the default tinygo adapter.
//
// Every result is forwarded. Repeats are dropped by scan.Scanner after its
// filter runs, since a device may only reveal its name in a later report.
type Source struct {
	adapter *bluetooth.Adapter
	logger  *logrus.Logger

	enableOnce sync.Once
	enableErr  error
}

func NewSource(logger *logrus.Logger) (scan.Source, error) {
	if logger == nil {
		logger = logrus.New()
	}
	return &Source{adapter: bluetooth.DefaultAdapter, logger: logger}, nil
}

func (s *Source) enable() error {
	s.enableOnce.Do(func() {
		s.enableErr = s.adapter.Enable()
	})
	return s.enableErr
}

// Scan runs until ctx ends; the adapter is stopped from a watcher goroutine.
func (s *Source) Scan(ctx context.Context, _ bool, handler func(scan.Report)) error {
	if err := s.enable(); err != nil {
		return platform.NormalizeError(err)
	}

	done := make(chan struct{})
	defer close(done)
	groutine.Go(ctx, "tinygo-stop-watcher", func(ctx context.Context) {
		select {
		case <-ctx.Done():
			if err := s.adapter.StopScan(); err != nil {
				s.logger.WithError(err).Debug("Failed to stop scan")
			}
		case <-done:
		}
	})

	err := s.adapter.Scan(forward(handler))
	if err != nil && ctx.Err() == nil {
		return platform.NormalizeError(err)
	}
	return ctx.Err()
}

func forward(handler func(scan.Report)) func(*bluetooth.Adapter, bluetooth.ScanResult) {
	return func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
		handler(ReportFromScanResult(result, time.Now()))
	}
}

// ReportFromScanResult converts a tinygo scan result. The raw payload is used
// when the platform exposes it; otherwise the decoded fields are rebuilt as
// pre-split items.
func ReportFromScanResult(result bluetooth.ScanResult, ts time.Time) scan.Report {
	r := scan.Report{
		AddressString: result.Address.String(),
		RSSI:          int(result.RSSI),
		Timestamp:     ts,
	}

	if raw := result.AdvertisementPayload.Bytes(); raw != nil {
		r.Payload = append([]byte{}, raw...)
		return r
	}

	b := advertisement.NewBuilder()
	if name := result.LocalName(); name != "" {
		b.AppendCompleteName(name)
	}
	var services []uuid.UUID
	for _, u := range result.ServiceUUIDs() {
		if id, err := uuid.Parse(u.String()); err == nil {
			services = append(services, id)
		}
	}
	b.AppendServices(services...)
	for _, md := range result.ManufacturerData() {
		b.AppendManufacturerData(md.CompanyID, md.Data)
	}
	for _, sd := range result.ServiceData() {
		if id, err := uuid.Parse(sd.UUID.String()); err == nil {
			b.AppendServiceData(id, sd.Data)
		}
	}
	r.Items = b.Items()
	return r
}

var _ scan.Source = (*Source)(nil)
