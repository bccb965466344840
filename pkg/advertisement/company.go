package advertisement

import "fmt"

// Company identifiers assigned by the Bluetooth SIG that the package refers to.
const (
	CompanyEricsson  uint16 = 0x0000
	CompanyMicrosoft uint16 = 0x0006
	CompanyTI        uint16 = 0x000D
	CompanyApple     uint16 = 0x004C
	CompanyNordic    uint16 = 0x0059
	CompanySamsung   uint16 = 0x0075
	CompanyGoogle    uint16 = 0x00E0
)

var companyNames = map[uint16]string{
	0x0000: "Ericsson AB",
	0x0001: "Nokia Mobile Phones",
	0x0002: "Intel Corp.",
	0x0003: "IBM Corp.",
	0x0004: "Toshiba Corp.",
	0x0006: "Microsoft",
	0x0008: "Motorola",
	0x000D: "Texas Instruments Inc.",
	0x000F: "Broadcom Corporation",
	0x004C: "Apple, Inc.",
	0x0059: "Nordic Semiconductor ASA",
	0x0075: "Samsung Electronics Co. Ltd.",
	0x0087: "Garmin International, Inc.",
	0x00E0: "Google",
	0x0131: "Cypress Semiconductor",
	0x0157: "Anhui Huami Information Technology Co., Ltd.",
	0x0171: "Amazon.com Services, LLC",
	0x02E5: "Espressif Incorporated",
}

// CompanyName returns the registered name of a company identifier, or "" if unknown.
func CompanyName(id uint16) string {
	return companyNames[id]
}

// CompanyLabel returns the company name when known and the hex identifier otherwise.
func CompanyLabel(id uint16) string {
	if name, ok := companyNames[id]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", id)
}
