//go:build windows

package hidreg

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const rootHIDPath = `SYSTEM\CurrentControlSet\Enum\HID`

// List walks the HID enumeration tree and returns every device instance
// that carries a description. Instances without one are skipped, not
// errors; the tree routinely holds stale entries.
func List() ([]Device, error) {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, rootHIDPath, registry.READ)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", rootHIDPath, err)
	}
	defer root.Close()

	hardwareIDs, err := subKeyNames(root)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", rootHIDPath, err)
	}

	var devices []Device
	for _, hwid := range hardwareIDs {
		hwKey, err := registry.OpenKey(root, hwid, registry.READ)
		if err != nil {
			continue
		}

		instances, err := subKeyNames(hwKey)
		hwKey.Close()
		if err != nil {
			continue
		}

		for _, instance := range instances {
			instKey, err := registry.OpenKey(root, hwid+`\`+instance, registry.READ)
			if err != nil {
				continue
			}
			desc, _, err := instKey.GetStringValue("DeviceDesc")
			instKey.Close()
			if err != nil {
				continue
			}

			driver, name := parseDeviceDesc(desc)
			devices = append(devices, Device{
				HardwareID: hwid,
				Instance:   instance,
				Driver:     driver,
				Name:       name,
			})
		}
	}

	return devices, nil
}

func subKeyNames(key registry.Key) ([]string, error) {
	stat, err := key.Stat()
	if err != nil {
		return nil, err
	}
	return key.ReadSubKeyNames(int(stat.SubKeyCount))
}
