package goble

import (
	"context"
	"errors"
	"testing"

	"github.com/go-ble/ble"
	"github.com/srg/bleadv/internal/platform"
	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/bleuuid"
	"github.com/srg/bleadv/pkg/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAdvertisement implements ble.Advertisement for testing
type MockAdvertisement struct {
	mock.Mock
}

func (m *MockAdvertisement) LocalName() string {
	return m.Called().String(0)
}

func (m *MockAdvertisement) ManufacturerData() []byte {
	return m.Called().Get(0).([]byte)
}

func (m *MockAdvertisement) ServiceData() []ble.ServiceData {
	return m.Called().Get(0).([]ble.ServiceData)
}

func (m *MockAdvertisement) Services() []ble.UUID {
	return m.Called().Get(0).([]ble.UUID)
}

func (m *MockAdvertisement) OverflowService() []ble.UUID {
	return m.Called().Get(0).([]ble.UUID)
}

func (m *MockAdvertisement) TxPowerLevel() int {
	return m.Called().Int(0)
}

func (m *MockAdvertisement) Connectable() bool {
	return m.Called().Bool(0)
}

func (m *MockAdvertisement) SolicitedService() []ble.UUID {
	return m.Called().Get(0).([]ble.UUID)
}

func (m *MockAdvertisement) RSSI() int {
	return m.Called().Int(0)
}

func (m *MockAdvertisement) Addr() ble.Addr {
	return m.Called().Get(0).(ble.Addr)
}

// MockAddr implements ble.Addr for testing
type MockAddr struct {
	address string
}

func (m *MockAddr) String() string {
	return m.address
}

func newMockAdvertisement() *MockAdvertisement {
	adv := &MockAdvertisement{}
	adv.On("Addr").Return(&MockAddr{"aa:bb:cc:dd:ee:ff"})
	adv.On("LocalName").Return("")
	adv.On("RSSI").Return(-50)
	adv.On("ManufacturerData").Return([]byte(nil))
	adv.On("ServiceData").Return([]ble.ServiceData(nil))
	adv.On("Services").Return([]ble.UUID(nil))
	adv.On("OverflowService").Return([]ble.UUID(nil))
	adv.On("SolicitedService").Return([]ble.UUID(nil))
	adv.On("TxPowerLevel").Return(txPowerUnavailable)
	adv.On("Connectable").Return(false)
	return adv
}

func TestReportFromAdvertisement(t *testing.T) {
	nus := ble.MustParse("6e400001-b5a3-f393-e0a9-e50e24dcca9e")

	adv := &MockAdvertisement{}
	adv.On("Addr").Return(&MockAddr{"aa:bb:cc:dd:ee:ff"})
	adv.On("LocalName").Return("Test Device")
	adv.On("RSSI").Return(-45)
	adv.On("ManufacturerData").Return([]byte{0x4c, 0x00, 0x01, 0x02})
	adv.On("ServiceData").Return([]ble.ServiceData{{UUID: ble.UUID16(0x180f), Data: []byte{0x64}}})
	adv.On("Services").Return([]ble.UUID{ble.UUID16(0x180f), nus})
	adv.On("OverflowService").Return([]ble.UUID{ble.UUID16(0x180a)})
	adv.On("SolicitedService").Return([]ble.UUID{ble.UUID16(0x1812)})
	adv.On("TxPowerLevel").Return(4)
	adv.On("Connectable").Return(true)

	r := ReportFromAdvertisement(adv)

	assert.Equal(t, "aa:bb:cc:dd:ee:ff", r.AddressString)
	assert.Equal(t, -45, r.RSSI)
	assert.True(t, r.Connectable)
	assert.Nil(t, r.Payload)

	a, err := r.Decode()
	require.NoError(t, err)
	assert.Equal(t, "Test Device", a.DeviceName)
	assert.Equal(t, 4, a.TxPowerLevel)
	assert.True(t, a.HasService(bleuuid.ExpandAdoptedKey(0x180f)))
	assert.True(t, a.HasService(bleuuid.FromBLE(nus)))
	assert.True(t, a.HasService(bleuuid.ExpandAdoptedKey(0x180a)))
	assert.Equal(t, []uint16{advertisement.CompanyApple}, a.CompanyIDs())
	assert.Len(t, a.SolicitedServices, 1)

	data, ok := a.ServiceDataFor(bleuuid.ExpandAdoptedKey(0x180f))
	require.True(t, ok)
	assert.Equal(t, []byte{0x64}, data)

	adv.AssertExpectations(t)
}

func TestReportFromAdvertisement_Empty(t *testing.T) {
	r := ReportFromAdvertisement(newMockAdvertisement())
	assert.Empty(t, r.Items)

	a, err := r.Decode()
	require.NoError(t, err)
	assert.False(t, a.HasDeviceName)
	assert.False(t, a.HasTxPowerLevel)
	assert.Equal(t, advertisement.TxPowerUnknown, a.TxPowerLevel)
	assert.Equal(t, scan.DeviceID(nil, "AA:BB:CC:DD:EE:FF"), scan.DeviceID(r.Address, r.AddressString))
}

func TestSource_DeviceFactoryError(t *testing.T) {
	original := DeviceFactory
	t.Cleanup(func() { DeviceFactory = original })

	DeviceFactory = func() (ble.Device, error) {
		return nil, errors.New("central manager has invalid state: have=4 want=5: is Bluetooth turned on?")
	}

	src, err := NewSource(nil)
	require.NoError(t, err)

	err = src.Scan(context.Background(), false, func(scan.Report) {})
	assert.ErrorIs(t, err, platform.ErrBluetoothOff)
}
