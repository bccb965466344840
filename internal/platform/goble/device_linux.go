package goble

import (
	"github.com/go-ble/ble"
	"github.com/go-ble/ble/linux"
	"github.com/sirupsen/logrus"
	"github.com/srg/bleadv/internal/platform"
	"github.com/srg/bleadv/pkg/scan"
)

// DeviceFactory creates ble.Device instances (can be overridden in tests)
//
//nolint:revive // DeviceFactory name is intentional for test mocking
var DeviceFactory = func() (ble.Device, error) {
	return linux.NewDevice()
}

func init() {
	platform.Register(Name, 0, func(logger *logrus.Logger) (scan.Source, error) {
		return NewSource(logger)
	})
}
