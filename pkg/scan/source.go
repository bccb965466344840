package scan

import (
	"context"
	"net"
	"time"

	"github.com/srg/bleadv/pkg/advertisement"
)

// Report is one advertisement as delivered by a radio backend.
//
// Backends that expose the raw payload set Payload; backends that only expose
// pre-split fields set Items. Payload wins when both are present.
type Report struct {
	Address         []byte
	AddressString   string
	AddressIsRandom *bool
	RSSI            int
	Connectable     bool
	Payload         []byte
	Items           []advertisement.Item
	Timestamp       time.Time
}

// Source delivers advertisement reports until ctx ends or an error occurs.
// handler may be called from a backend goroutine.
type Source interface {
	Scan(ctx context.Context, allowDup bool, handler func(Report)) error
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, allowDup bool, handler func(Report)) error

func (f SourceFunc) Scan(ctx context.Context, allowDup bool, handler func(Report)) error {
	return f(ctx, allowDup, handler)
}

// Decode parses the report's payload into an Advertisement.
func (r Report) Decode() (*advertisement.Advertisement, error) {
	if r.Payload != nil {
		return advertisement.Decode(r.Payload)
	}
	return advertisement.New(r.Items), nil
}

// AddressText returns the printable address.
func (r Report) AddressText() string {
	if r.AddressString != "" {
		return r.AddressString
	}
	return net.HardwareAddr(r.Address).String()
}
