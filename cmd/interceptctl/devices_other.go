//go:build !windows

package main

import (
	"fmt"
	"os"
)

func cmdDevices() {
	fmt.Fprintln(os.Stderr, "device listing requires Windows and the Interception driver")
	os.Exit(1)
}
