// Package goble is the go-ble backed scan.Source.
package goble

import (
	"context"
	"errors"

	"github.com/go-ble/ble"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/srg/bleadv/internal/platform"
	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/bleuuid"
	"github.com/srg/bleadv/pkg/scan"
)

// Name is the backend name used with platform.NewSource.
const Name = "goble"

// txPowerUnavailable is what go-ble reports when no TX power field was advertised.
const txPowerUnavailable = 127

// Source scans through a go-ble device created by DeviceFactory.
type Source struct {
	logger *logrus.Logger
}

func NewSource(logger *logrus.Logger) (scan.Source, error) {
	if logger == nil {
		logger = logrus.New()
	}
	return &Source{logger: logger}, nil
}

// Scan opens the device, delivers every advertisement as a scan.Report and
// stops the device when ctx ends.
func (s *Source) Scan(ctx context.Context, allowDup bool, handler func(scan.Report)) error {
	dev, err := DeviceFactory()
	if err != nil {
		return platform.NormalizeError(err)
	}
	defer func() {
		if err := dev.Stop(); err != nil {
			s.logger.WithError(err).Debug("Failed to stop BLE device")
		}
	}()

	err = dev.Scan(ctx, allowDup, func(adv ble.Advertisement) {
		handler(ReportFromAdvertisement(adv))
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return platform.NormalizeError(err)
	}
	return ctx.Err()
}

// ReportFromAdvertisement converts a go-ble advertisement. go-ble exposes
// decoded fields only, so the payload is rebuilt as pre-split items.
func ReportFromAdvertisement(adv ble.Advertisement) scan.Report {
	b := advertisement.NewBuilder()

	if name := adv.LocalName(); name != "" {
		b.AppendCompleteName(name)
	}
	b.AppendServices(uuids(adv.Services())...)
	b.AppendIncompleteServices(uuids(adv.OverflowService())...)
	b.AppendSolicitedServices(uuids(adv.SolicitedService())...)
	for _, sd := range adv.ServiceData() {
		b.AppendServiceData(bleuuid.FromBLE(sd.UUID), sd.Data)
	}
	if md := adv.ManufacturerData(); len(md) > 0 {
		b.AppendField(advertisement.TypeManufacturerSpecificData, md)
	}
	if tx := adv.TxPowerLevel(); tx != txPowerUnavailable && tx >= -128 && tx <= 127 {
		b.AppendTxPower(int8(tx))
	}

	r := scan.Report{
		RSSI:        adv.RSSI(),
		Connectable: adv.Connectable(),
		Items:       b.Items(),
	}
	if addr := adv.Addr(); addr != nil {
		r.AddressString = addr.String()
	}
	return r
}

func uuids(in []ble.UUID) []uuid.UUID {
	if len(in) == 0 {
		return nil
	}
	out := make([]uuid.UUID, 0, len(in))
	for _, u := range in {
		if id := bleuuid.FromBLE(u); id != uuid.Nil {
			out = append(out, id)
		}
	}
	return out
}

var _ scan.Source = (*Source)(nil)
