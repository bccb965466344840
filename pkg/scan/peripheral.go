package scan

import (
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/bleuuid"
)

// Peripheral is the latest view of one advertising device.
type Peripheral struct {
	DeviceID        uuid.UUID
	Address         string
	AddressIsRandom *bool
	RSSI            int
	Connectable     bool
	Advertisement   *advertisement.Advertisement
	LastSeen        time.Time
}

// Name returns the advertised local name, or "".
func (p Peripheral) Name() string {
	if p.Advertisement == nil {
		return ""
	}
	return p.Advertisement.DeviceName
}

// Equal compares peripherals by device identity only.
func (p Peripheral) Equal(other Peripheral) bool {
	return p.DeviceID == other.DeviceID
}

func (p Peripheral) String() string {
	if name := p.Name(); name != "" {
		return name + " <" + p.DeviceID.String() + ">"
	}
	return p.DeviceID.String()
}

// DeviceID derives a stable identifier for a device.
//
// Raw 6-byte addresses and MAC strings map through bleuuid.AddressToUUID;
// platform identifiers that already are UUIDs (CoreBluetooth) are kept;
// anything else is hashed into a name-based UUID.
func DeviceID(address []byte, addressString string) uuid.UUID {
	if len(address) == bleuuid.AddressLength {
		if id, err := bleuuid.AddressToUUID(address); err == nil {
			return id
		}
	}

	s := strings.TrimSpace(addressString)
	if mac, err := net.ParseMAC(s); err == nil && len(mac) == bleuuid.AddressLength {
		if id, err := bleuuid.AddressToUUID(mac); err == nil {
			return id
		}
	}
	if id, err := uuid.Parse(s); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(s)))
}
