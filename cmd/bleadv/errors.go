package main

import (
	"errors"
	"fmt"

	"github.com/srg/bleadv/internal/platform"
	"github.com/srg/bleadv/pkg/advertisement"
)

// Command-level errors
var (
	// ErrInvalidHex indicates a decode argument that is not a hex payload.
	ErrInvalidHex = errors.New("invalid hex payload")
)

// FormatUserError turns an error into a one-line message with a hint for the
// failures a user can fix.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var dataErr *advertisement.DataFormatError
	switch {
	case errors.Is(err, platform.ErrBluetoothOff):
		return "Bluetooth is turned off. Turn it on and try again."
	case errors.Is(err, platform.ErrPermissionDenied):
		return fmt.Sprintf("%v (on Linux run as root or grant CAP_NET_ADMIN,CAP_NET_RAW)", err)
	case errors.Is(err, platform.ErrUnsupported):
		return fmt.Sprintf("%v (available backends: %v)", err, platform.Backends())
	case errors.As(err, &dataErr):
		return fmt.Sprintf("malformed advertising data at offset %d: %v", dataErr.Offset, err)
	default:
		return err.Error()
	}
}
