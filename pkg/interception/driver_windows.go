//go:build windows

package interception

import (
	"errors"
	"syscall"
	"unsafe"
)

// Bindings for interception.dll. The DLL must be on the search path and the
// kernel-mode driver installed; LazyDLL defers the load so importing this
// package on a machine without the driver only fails at first use.
var (
	interceptionDLL = syscall.NewLazyDLL("interception.dll")

	procCreateContext   = interceptionDLL.NewProc("interception_create_context")
	procDestroyContext  = interceptionDLL.NewProc("interception_destroy_context")
	procGetPrecedence   = interceptionDLL.NewProc("interception_get_precedence")
	procSetPrecedence   = interceptionDLL.NewProc("interception_set_precedence")
	procGetFilter       = interceptionDLL.NewProc("interception_get_filter")
	procSetFilter       = interceptionDLL.NewProc("interception_set_filter")
	procWait            = interceptionDLL.NewProc("interception_wait")
	procWaitWithTimeout = interceptionDLL.NewProc("interception_wait_with_timeout")
	procSend            = interceptionDLL.NewProc("interception_send")
	procReceive         = interceptionDLL.NewProc("interception_receive")
	procGetHardwareID   = interceptionDLL.NewProc("interception_get_hardware_id")
	procIsInvalid       = interceptionDLL.NewProc("interception_is_invalid")
	procIsKeyboard      = interceptionDLL.NewProc("interception_is_keyboard")
	procIsMouse         = interceptionDLL.NewProc("interception_is_mouse")
)

var errCreateContext = errors.New("interception_create_context returned NULL (driver not installed?)")

type windowsDriver struct{}

func newPlatformDriver() nativeDriver { return windowsDriver{} }

func (windowsDriver) createContext() (uintptr, error) {
	if err := interceptionDLL.Load(); err != nil {
		return 0, err
	}
	h, _, _ := procCreateContext.Call()
	if h == 0 {
		return 0, errCreateContext
	}
	return h, nil
}

func (windowsDriver) destroyContext(h uintptr) {
	procDestroyContext.Call(h)
}

func (windowsDriver) getPrecedence(h uintptr, d Device) Precedence {
	r, _, _ := procGetPrecedence.Call(h, uintptr(d))
	return Precedence(int32(r))
}

func (windowsDriver) setPrecedence(h uintptr, d Device, p Precedence) {
	procSetPrecedence.Call(h, uintptr(d), uintptr(uint32(p)))
}

func (windowsDriver) getFilter(h uintptr, d Device) uint16 {
	r, _, _ := procGetFilter.Call(h, uintptr(d))
	return uint16(r)
}

// setFilter passes the DLL's own exported predicate as the classification
// callback, exactly as the C samples do; no Go callback crosses the
// boundary.
func (windowsDriver) setFilter(h uintptr, class deviceClass, filter uint16) {
	var predicate uintptr
	switch class {
	case classMouse:
		predicate = procIsMouse.Addr()
	case classKeyboard:
		predicate = procIsKeyboard.Addr()
	default:
		return
	}
	procSetFilter.Call(h, predicate, uintptr(filter))
}

func (windowsDriver) wait(h uintptr) Device {
	r, _, _ := procWait.Call(h)
	return Device(int32(r))
}

func (windowsDriver) waitWithTimeout(h uintptr, ms uint32) Device {
	r, _, _ := procWaitWithTimeout.Call(h, uintptr(ms))
	return Device(int32(r))
}

func (windowsDriver) sendMouse(h uintptr, d Device, recs []RawMouseStroke) int {
	if len(recs) == 0 {
		return 0
	}
	r, _, _ := procSend.Call(h, uintptr(d),
		uintptr(unsafe.Pointer(&recs[0])), uintptr(uint32(len(recs))))
	return int(int32(r))
}

func (windowsDriver) sendKeyboard(h uintptr, d Device, recs []RawKeyStroke) int {
	if len(recs) == 0 {
		return 0
	}
	r, _, _ := procSend.Call(h, uintptr(d),
		uintptr(unsafe.Pointer(&recs[0])), uintptr(uint32(len(recs))))
	return int(int32(r))
}

func (windowsDriver) receiveMouse(h uintptr, d Device, recs []RawMouseStroke) int {
	if len(recs) == 0 {
		return 0
	}
	r, _, _ := procReceive.Call(h, uintptr(d),
		uintptr(unsafe.Pointer(&recs[0])), uintptr(uint32(len(recs))))
	return int(int32(r))
}

func (windowsDriver) receiveKeyboard(h uintptr, d Device, recs []RawKeyStroke) int {
	if len(recs) == 0 {
		return 0
	}
	r, _, _ := procReceive.Call(h, uintptr(d),
		uintptr(unsafe.Pointer(&recs[0])), uintptr(uint32(len(recs))))
	return int(int32(r))
}

func (windowsDriver) hardwareID(h uintptr, d Device, buf []uint16) int {
	if len(buf) == 0 {
		return 0
	}
	r, _, _ := procGetHardwareID.Call(h, uintptr(d),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(uint32(len(buf)*2)))
	return int(uint32(r))
}

func (windowsDriver) isInvalid(d Device) bool {
	r, _, _ := procIsInvalid.Call(uintptr(d))
	return r != 0
}

func (windowsDriver) isKeyboard(d Device) bool {
	r, _, _ := procIsKeyboard.Call(uintptr(d))
	return r != 0
}

func (windowsDriver) isMouse(d Device) bool {
	r, _, _ := procIsMouse.Call(uintptr(d))
	return r != 0
}
