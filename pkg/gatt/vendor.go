package gatt

import "github.com/google/uuid"

// NordicDFUService is the legacy Nordic Device Firmware Update service.
var NordicDFUService = Attribute{
	ID:          uuid.MustParse("00001530-1212-efde-1523-785feabcd123"),
	Description: "Nordic Device Firmware Update Service",
	Type:        Service,
}

const tiSensorTag = "TI SensorTag "

// TIKey expands a SensorTag 16-bit key into F000XXXX-0451-4000-B000-000000000000.
func TIKey(key uint16) uuid.UUID {
	return uuid.UUID{
		0xf0, 0x00, byte(key >> 8), byte(key),
		0x04, 0x51, 0x40, 0x00,
		0xb0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
}

var tiSensorTagServices = []adoptedEntry{
	{0xaa00, "Infrared Thermometer"},
	{0xaa10, "Accelerometer"},
	{0xaa20, "Humidity"},
	{0xaa30, "Magnetometer"},
	{0xaa40, "Barometer"},
	{0xaa50, "Gyroscope"},
	{0xaa60, "Test"},
	{0xccc0, "Connection Control"},
	{0xffc0, "Over-the-Air Download"},
}

var tiSensorTagCharacteristics = []adoptedEntry{
	{0xaa01, "Infrared Temperature Data"},
	{0xaa02, "Infrared Temperature On/Off"},
	{0xaa03, "Infrared Temperature Sample Rate"},
	{0xaa11, "Accelerometer Data"},
	{0xaa12, "Accelerometer On/Off"},
	{0xaa13, "Accelerometer Sample Rate"},
	{0xaa21, "Humidity Data"},
	{0xaa22, "Humidity On/Off"},
	{0xaa23, "Humidity Sample Rate"},
	{0xaa31, "Magnetometer Data"},
	{0xaa32, "Magnetometer On/Off"},
	{0xaa33, "Magnetometer Sample Rate"},
	{0xaa41, "Barometer Data"},
	{0xaa42, "Barometer On/Off"},
	{0xaa43, "Barometer Calibration"},
	{0xaa44, "Barometer Sample Rate"},
	{0xaa51, "Gyroscope Data"},
	{0xaa52, "Gyroscope On/Off"},
	{0xaa53, "Gyroscope Sample Rate"},
	{0xaa61, "Test Data"},
	{0xaa62, "Test Configuration"},
	{0xccc1, "Connection Parameters"},
	{0xccc2, "Connection Request Parameters"},
	{0xccc3, "Connection Request Disconnect"},
	{0xffc1, "OAD Image Identify"},
	{0xffc2, "OAD Image Block"},
}

// AddVendorAttributes registers the TI SensorTag services and characteristics
// and the Nordic DFU service.
func (r *Registry) AddVendorAttributes() {
	r.Add(NordicDFUService)
	for _, e := range tiSensorTagServices {
		r.AddServiceUUID(TIKey(e.key), tiSensorTag+e.name)
	}
	for _, e := range tiSensorTagCharacteristics {
		r.AddCharacteristicUUID(TIKey(e.key), tiSensorTag+e.name)
	}
}
