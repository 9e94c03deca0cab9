//go:build windows

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"interceptd/internal/hidreg"
	"interceptd/pkg/interception"
)

// The driver enumerates keyboards as devices 1-10 and mice as 11-20.
const maxDevice = 20

func cmdDevices() {
	printDriverDevices()
	printRegistryDevices()
}

func printDriverDevices() {
	ctx, err := interception.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "driver unavailable: %v\n", err)
		return
	}
	defer ctx.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Device", "Class", "Hardware ID"})
	for d := interception.Device(1); d <= maxDevice; d++ {
		id, ok := ctx.HardwareID(d)
		if !ok {
			continue
		}
		table.Append([]string{strconv.Itoa(int(d)), deviceClass(d), id})
	}
	table.Render()
}

func deviceClass(d interception.Device) string {
	switch {
	case interception.IsMouse(d):
		return "mouse"
	case interception.IsKeyboard(d):
		return "keyboard"
	default:
		return "invalid"
	}
}

func printRegistryDevices() {
	devices, err := hidreg.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "registry enumeration failed: %v\n", err)
		return
	}
	if len(devices) == 0 {
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Hardware ID", "Driver", "Description"})
	for _, d := range devices {
		table.Append([]string{d.HardwareID, d.Driver, d.Name})
	}
	table.Render()
}
