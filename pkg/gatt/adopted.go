package gatt

type adoptedEntry struct {
	key  uint16
	name string
}

// Descriptors adopted by the Bluetooth SIG that code commonly refers to.
var (
	CharacteristicExtendedProperties  = NewAttribute(Descriptor, 0x2900, "Characteristic Extended Properties")
	CharacteristicUserDescription     = NewAttribute(Descriptor, 0x2901, "Characteristic User Description")
	ClientCharacteristicConfiguration = NewAttribute(Descriptor, 0x2902, "Client Characteristic Configuration")
	ServerCharacteristicConfiguration = NewAttribute(Descriptor, 0x2903, "Server Characteristic Configuration")
	CharacteristicPresentationFormat  = NewAttribute(Descriptor, 0x2904, "Characteristic Presentation Format")
	CharacteristicAggregateFormat     = NewAttribute(Descriptor, 0x2905, "Characteristic Aggregate Format")
)

var adoptedDescriptors = []adoptedEntry{
	{0x2906, "Valid Range"},
	{0x2907, "External Report Reference"},
	{0x2908, "Report Reference"},
	{0x2909, "Number of Digitals"},
	{0x290A, "Value Trigger Setting"},
	{0x290B, "Environmental Sensing Configuration"},
	{0x290C, "Environmental Sensing Measurement"},
	{0x290D, "Environmental Sensing Trigger Setting"},
	{0x290E, "Time Trigger Setting"},
}

// AddAdoptedServices registers the SIG adopted services.
func (r *Registry) AddAdoptedServices() {
	for _, e := range adoptedServices {
		r.AddService(e.key, e.name)
	}
}

// AddAdoptedCharacteristics registers the SIG adopted characteristics.
func (r *Registry) AddAdoptedCharacteristics() {
	for _, e := range adoptedCharacteristics {
		r.AddCharacteristic(e.key, e.name)
	}
}

// AddAdoptedDescriptors registers the SIG adopted descriptors.
func (r *Registry) AddAdoptedDescriptors() {
	r.Add(CharacteristicExtendedProperties)
	r.Add(CharacteristicUserDescription)
	r.Add(ClientCharacteristicConfiguration)
	r.Add(ServerCharacteristicConfiguration)
	r.Add(CharacteristicPresentationFormat)
	r.Add(CharacteristicAggregateFormat)
	for _, e := range adoptedDescriptors {
		r.AddDescriptor(e.key, e.name)
	}
}
