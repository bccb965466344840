package testutils

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/bleuuid"
	"github.com/srg/bleadv/pkg/scan"
)

// ReportBuilder builds scan.Report values the way a radio backend would
// deliver them: an address, signal data and an encoded advertising payload.
//
// By default the payload is encoded into Report.Payload; PreSplit delivers the
// same fields as Report.Items instead, like backends without raw access.
type ReportBuilder struct {
	address     string
	random      *bool
	rssi        int
	connectable bool
	payload     *advertisement.Builder
	raw         []byte
	rawSet      bool
	preSplit    bool
	timestamp   time.Time
}

// NewReportBuilder starts a connectable report with an empty payload.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{
		address:     "AA:BB:CC:DD:EE:FF",
		connectable: true,
		payload:     advertisement.NewBuilder(),
	}
}

func (b *ReportBuilder) WithAddress(addr string) *ReportBuilder {
	b.address = addr
	return b
}

func (b *ReportBuilder) WithRandomAddress(random bool) *ReportBuilder {
	b.random = &random
	return b
}

func (b *ReportBuilder) WithRSSI(rssi int) *ReportBuilder {
	b.rssi = rssi
	return b
}

func (b *ReportBuilder) WithConnectable(c bool) *ReportBuilder {
	b.connectable = c
	return b
}

func (b *ReportBuilder) WithTimestamp(ts time.Time) *ReportBuilder {
	b.timestamp = ts
	return b
}

func (b *ReportBuilder) WithFlags(f advertisement.Flags) *ReportBuilder {
	b.payload.AppendFlags(f)
	return b
}

func (b *ReportBuilder) WithName(name string) *ReportBuilder {
	b.payload.AppendCompleteName(name)
	return b
}

func (b *ReportBuilder) WithShortName(name string) *ReportBuilder {
	b.payload.AppendShortName(name)
	return b
}

// WithServices adds service UUIDs in short ("180D") or full form.
// Panics on invalid UUIDs as this is intended for test data setup.
func (b *ReportBuilder) WithServices(uuids ...string) *ReportBuilder {
	for _, s := range uuids {
		b.payload.AppendServices(bleuuid.MustParse(s))
	}
	return b
}

func (b *ReportBuilder) WithManufacturerData(companyID uint16, data []byte) *ReportBuilder {
	b.payload.AppendManufacturerData(companyID, data)
	return b
}

func (b *ReportBuilder) WithServiceData(uuid string, data []byte) *ReportBuilder {
	b.payload.AppendServiceData(bleuuid.MustParse(uuid), data)
	return b
}

func (b *ReportBuilder) WithTxPower(dBm int8) *ReportBuilder {
	b.payload.AppendTxPower(dBm)
	return b
}

// WithRawPayload replaces the encoded payload with raw bytes, e.g. malformed data.
func (b *ReportBuilder) WithRawPayload(raw []byte) *ReportBuilder {
	b.raw = raw
	b.rawSet = true
	return b
}

// PreSplit delivers the payload as pre-split items instead of raw bytes.
func (b *ReportBuilder) PreSplit() *ReportBuilder {
	b.preSplit = true
	return b
}

// reportJSON is the FromJSON input format.
type reportJSON struct {
	Address      *string           `json:"address"`
	Random       *bool             `json:"random"`
	RSSI         *int              `json:"rssi"`
	Connectable  *bool             `json:"connectable"`
	Name         *string           `json:"name"`
	Services     []string          `json:"services"`
	TxPower      *int8             `json:"tx_power"`
	Manufacturer *struct {
		CompanyID uint16 `json:"company_id"`
		Data      string `json:"data"`
	} `json:"manufacturer_data"`
	ServiceData map[string]string `json:"service_data"`
	Raw         *string           `json:"raw"`
}

// FromJSON fills builder fields from a JSON string with format support.
// Byte fields are hex strings. Panics on invalid JSON as this is intended
// for test data setup.
func (b *ReportBuilder) FromJSON(jsonStrFmt string, args ...interface{}) *ReportBuilder {
	var in reportJSON
	if err := json.Unmarshal([]byte(fmt.Sprintf(jsonStrFmt, args...)), &in); err != nil {
		panic(fmt.Sprintf("FromJSON: %v", err))
	}

	if in.Address != nil {
		b.WithAddress(*in.Address)
	}
	if in.Random != nil {
		b.WithRandomAddress(*in.Random)
	}
	if in.RSSI != nil {
		b.WithRSSI(*in.RSSI)
	}
	if in.Connectable != nil {
		b.WithConnectable(*in.Connectable)
	}
	if in.Name != nil {
		b.WithName(*in.Name)
	}
	if len(in.Services) > 0 {
		b.WithServices(in.Services...)
	}
	if in.TxPower != nil {
		b.WithTxPower(*in.TxPower)
	}
	if in.Manufacturer != nil {
		b.WithManufacturerData(in.Manufacturer.CompanyID, mustHex(in.Manufacturer.Data))
	}
	for id, data := range in.ServiceData {
		b.WithServiceData(id, mustHex(data))
	}
	if in.Raw != nil {
		b.WithRawPayload(mustHex(*in.Raw))
	}
	return b
}

// Build returns the report. Panics if the payload cannot be encoded.
func (b *ReportBuilder) Build() scan.Report {
	r := scan.Report{
		AddressString:   b.address,
		AddressIsRandom: b.random,
		RSSI:            b.rssi,
		Connectable:     b.connectable,
		Timestamp:       b.timestamp,
	}
	if mac, err := net.ParseMAC(b.address); err == nil {
		r.Address = mac
	}

	switch {
	case b.rawSet:
		r.Payload = append([]byte{}, b.raw...)
	case b.preSplit:
		r.Items = b.payload.Items()
	default:
		r.Payload = b.payload.MustBytes()
	}
	return r
}

func mustHex(s string) []byte {
	data, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("invalid hex %q: %v", s, err))
	}
	return data
}
