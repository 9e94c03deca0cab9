package interception

// deviceClass selects which classification predicate a filter registration
// applies to. The driver dispatches on a predicate function, never on a
// reinterpreted record layout.
type deviceClass int

const (
	classInvalid deviceClass = iota
	classMouse
	classKeyboard
)

// nativeDriver is the seam between the safe layer and the driver DLL. The
// Windows implementation crosses into interception.dll; tests substitute an
// in-memory fake through newContext. Send and receive are typed per class
// so record strides always match the class the driver expects.
type nativeDriver interface {
	createContext() (uintptr, error)
	destroyContext(h uintptr)

	getPrecedence(h uintptr, d Device) Precedence
	setPrecedence(h uintptr, d Device, p Precedence)

	getFilter(h uintptr, d Device) uint16
	setFilter(h uintptr, class deviceClass, filter uint16)

	wait(h uintptr) Device
	waitWithTimeout(h uintptr, ms uint32) Device

	sendMouse(h uintptr, d Device, recs []RawMouseStroke) int
	sendKeyboard(h uintptr, d Device, recs []RawKeyStroke) int
	receiveMouse(h uintptr, d Device, recs []RawMouseStroke) int
	receiveKeyboard(h uintptr, d Device, recs []RawKeyStroke) int

	// hardwareID fills buf with UTF-16 code units and returns the byte
	// length the driver reports written, 0 when the device has no id.
	hardwareID(h uintptr, d Device, buf []uint16) int

	isInvalid(d Device) bool
	isKeyboard(d Device) bool
	isMouse(d Device) bool
}

var platformDrv nativeDriver = newPlatformDriver()

// IsInvalid reports whether the device id falls outside the driver's
// enumerated mouse and keyboard ranges. Stateless pass-through.
func IsInvalid(d Device) bool { return platformDrv.isInvalid(d) }

// IsKeyboard reports whether the device id names a keyboard.
func IsKeyboard(d Device) bool { return platformDrv.isKeyboard(d) }

// IsMouse reports whether the device id names a mouse.
func IsMouse(d Device) bool { return platformDrv.isMouse(d) }
