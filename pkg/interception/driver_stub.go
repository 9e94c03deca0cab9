//go:build !windows

package interception

import "errors"

// ErrNotAvailable is returned by New on platforms without the Interception
// driver. The event model and conversions remain fully usable.
var ErrNotAvailable = errors.New("interception: driver only available on Windows")

type stubDriver struct{}

func newPlatformDriver() nativeDriver { return stubDriver{} }

func (stubDriver) createContext() (uintptr, error) { return 0, ErrNotAvailable }
func (stubDriver) destroyContext(uintptr)          {}

func (stubDriver) getPrecedence(uintptr, Device) Precedence  { return 0 }
func (stubDriver) setPrecedence(uintptr, Device, Precedence) {}

func (stubDriver) getFilter(uintptr, Device) uint16                    { return 0 }
func (stubDriver) setFilter(uintptr, deviceClass, uint16)              {}
func (stubDriver) wait(uintptr) Device                                 { return 0 }
func (stubDriver) waitWithTimeout(uintptr, uint32) Device              { return 0 }
func (stubDriver) sendMouse(uintptr, Device, []RawMouseStroke) int     { return 0 }
func (stubDriver) sendKeyboard(uintptr, Device, []RawKeyStroke) int    { return 0 }
func (stubDriver) receiveMouse(uintptr, Device, []RawMouseStroke) int  { return 0 }
func (stubDriver) receiveKeyboard(uintptr, Device, []RawKeyStroke) int { return 0 }
func (stubDriver) hardwareID(uintptr, Device, []uint16) int            { return 0 }

func (stubDriver) isInvalid(Device) bool  { return true }
func (stubDriver) isKeyboard(Device) bool { return false }
func (stubDriver) isMouse(Device) bool    { return false }
