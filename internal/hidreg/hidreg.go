// Package hidreg reads HID device descriptions from the Windows registry.
// It supplements the driver's hardware ids with the human-readable names
// Windows keeps under SYSTEM\CurrentControlSet\Enum\HID.
package hidreg

import "strings"

// Device describes one HID device instance found in the registry.
type Device struct {
	// HardwareID is the registry key segment, e.g. "VID_046D&PID_C52B".
	HardwareID string

	// Instance is the per-connection instance key under the hardware id.
	Instance string

	// Driver is the INF the device binds to, e.g. "@msmouse.inf".
	Driver string

	// Name is the human-readable device description.
	Name string
}

// IsMouse reports whether the device binds to the stock mouse INF.
func (d Device) IsMouse() bool {
	return strings.EqualFold(d.Driver, "@msmouse.inf")
}

// IsKeyboard reports whether the device binds to the stock keyboard INF.
func (d Device) IsKeyboard() bool {
	return strings.EqualFold(d.Driver, "@keyboard.inf")
}

// parseDeviceDesc splits a DeviceDesc registry value of the form
// "@msmouse.inf,%hid.devicedesc%;HID-compliant mouse" into driver and name.
// Values missing the separators come back with what could be recovered.
func parseDeviceDesc(desc string) (driver, name string) {
	rest := desc
	if i := strings.Index(rest, ","); i >= 0 {
		driver = rest[:i]
		rest = rest[i+1:]
	}
	if i := strings.Index(rest, ";"); i >= 0 {
		name = rest[i+1:]
	} else if driver != "" {
		name = rest
	} else {
		name = desc
	}
	return driver, name
}
