// Package interception is a safe wrapper around the Interception
// keyboard/mouse driver. It owns the native context handle, models driver
// events as typed strokes, and converts them to and from the driver's
// fixed-layout records without trusting a single undefined bit.
package interception

import "errors"

// Device identifies one physical input device as enumerated by the driver.
// Mice occupy one id range, keyboards another; ids are only meaningful for
// the lifetime of the driver's current enumeration.
type Device = int32

// Precedence orders delivery among multiple contexts filtering the same
// device class. The ordering semantics belong to the driver, not this layer.
type Precedence = int32

// Conversion failures. Per-record: a failed record is dropped by Send and
// Receive, never the whole batch.
var (
	ErrMouseStateBits = errors.New("interception: undefined bits in raw mouse state")
	ErrMouseFlagBits  = errors.New("interception: undefined bits in raw mouse flags")
	ErrKeyStateBits   = errors.New("interception: undefined bits in raw key state")
	ErrClassMismatch  = errors.New("interception: stroke variant does not match device class")
)

// MouseState describes which mouse buttons or wheels transitioned in one
// observed event.
type MouseState uint16

const (
	MouseLeftButtonDown   MouseState = 0x001
	MouseLeftButtonUp     MouseState = 0x002
	MouseRightButtonDown  MouseState = 0x004
	MouseRightButtonUp    MouseState = 0x008
	MouseMiddleButtonDown MouseState = 0x010
	MouseMiddleButtonUp   MouseState = 0x020
	MouseButton4Down      MouseState = 0x040
	MouseButton4Up        MouseState = 0x080
	MouseButton5Down      MouseState = 0x100
	MouseButton5Up        MouseState = 0x200
	MouseWheel            MouseState = 0x400
	MouseHWheel           MouseState = 0x800

	mouseStateKnown MouseState = 0xFFF
)

// MouseFlags describes the motion semantics of a mouse event.
type MouseFlags uint16

const (
	MouseMoveRelative      MouseFlags = 0x000
	MouseMoveAbsolute      MouseFlags = 0x001
	MouseVirtualDesktop    MouseFlags = 0x002
	MouseAttributesChanged MouseFlags = 0x004
	MouseMoveNoCoalesce    MouseFlags = 0x008
	MouseTermsrvSrcShadow  MouseFlags = 0x100

	mouseFlagsKnown MouseFlags = 0x10F
)

// KeyState describes one keyboard transition. Down is the zero value; the
// E0/E1 bits mark extended scan-code prefixes.
type KeyState uint16

const (
	KeyDown            KeyState = 0x00
	KeyUp              KeyState = 0x01
	KeyE0              KeyState = 0x02
	KeyE1              KeyState = 0x03
	KeyTermsrvSetLED   KeyState = 0x08
	KeyTermsrvShadow   KeyState = 0x10
	KeyTermsrvVKPacket KeyState = 0x20

	keyStateKnown KeyState = 0x3B
)

// MouseFilter registers interest in mouse event kinds. It shares bit
// positions with MouseState but is a distinct role: it additionally carries
// MouseFilterMove, which has no discrete state counterpart.
type MouseFilter uint16

const (
	MouseFilterNone MouseFilter = 0

	MouseFilterLeftButtonDown   MouseFilter = MouseFilter(MouseLeftButtonDown)
	MouseFilterLeftButtonUp     MouseFilter = MouseFilter(MouseLeftButtonUp)
	MouseFilterRightButtonDown  MouseFilter = MouseFilter(MouseRightButtonDown)
	MouseFilterRightButtonUp    MouseFilter = MouseFilter(MouseRightButtonUp)
	MouseFilterMiddleButtonDown MouseFilter = MouseFilter(MouseMiddleButtonDown)
	MouseFilterMiddleButtonUp   MouseFilter = MouseFilter(MouseMiddleButtonUp)
	MouseFilterButton4Down      MouseFilter = MouseFilter(MouseButton4Down)
	MouseFilterButton4Up        MouseFilter = MouseFilter(MouseButton4Up)
	MouseFilterButton5Down      MouseFilter = MouseFilter(MouseButton5Down)
	MouseFilterButton5Up        MouseFilter = MouseFilter(MouseButton5Up)
	MouseFilterWheel            MouseFilter = MouseFilter(MouseWheel)
	MouseFilterHWheel           MouseFilter = MouseFilter(MouseHWheel)
	MouseFilterMove             MouseFilter = 0x1000

	MouseFilterAll MouseFilter = 0x1FFF

	mouseFilterKnown MouseFilter = 0x1FFF
)

// KeyFilter registers interest in keyboard event kinds. Its bit positions
// are shifted relative to KeyState (the driver distinguishes "interested in
// key-down" from "the down transition", whose state value is zero).
type KeyFilter uint16

const (
	KeyFilterNone KeyFilter = 0x00

	KeyFilterDown            KeyFilter = 0x01
	KeyFilterUp              KeyFilter = 0x02
	KeyFilterE0              KeyFilter = 0x04
	KeyFilterE1              KeyFilter = 0x08
	KeyFilterTermsrvSetLED   KeyFilter = 0x10
	KeyFilterTermsrvShadow   KeyFilter = 0x20
	KeyFilterTermsrvVKPacket KeyFilter = 0x40

	KeyFilterAll KeyFilter = 0x7F

	keyFilterKnown KeyFilter = 0x7F
)

// Filter is either a MouseFilter or a KeyFilter; SetFilter dispatches on
// the variant to pick the device class it applies to.
type Filter interface {
	isFilter()
}

func (MouseFilter) isFilter() {}
func (KeyFilter) isFilter()   {}

// Stroke is one discrete input event: either a MouseStroke or a KeyStroke.
// A stroke's variant must match the class of the device it is sent to or
// was received from; Send treats a mismatch as a per-stroke error.
type Stroke interface {
	isStroke()
}

// MouseStroke is one mouse state/motion sample.
type MouseStroke struct {
	State       MouseState
	Flags       MouseFlags
	Rolling     int16
	X           int32
	Y           int32
	Information uint32
}

// KeyStroke is one keyboard transition.
type KeyStroke struct {
	Code        ScanCode
	State       KeyState
	Information uint32
}

func (MouseStroke) isStroke() {}
func (KeyStroke) isStroke()   {}

// RawMouseStroke mirrors the driver's mouse record layout exactly:
// {state u16, flags u16, rolling i16, x i32, y i32, information u32}.
// The layout is dictated by the driver ABI and must not change.
type RawMouseStroke struct {
	State       uint16
	Flags       uint16
	Rolling     int16
	X           int32
	Y           int32
	Information uint32
}

// RawKeyStroke mirrors the driver's keyboard record layout exactly:
// {code u16, state u16, information u32}.
type RawKeyStroke struct {
	Code        uint16
	State       uint16
	Information uint32
}

// DecodeMouseStroke validates a raw mouse record and lifts it into a
// MouseStroke. Any bit outside the defined state or flag sets fails the
// record; nothing is silently masked off.
func DecodeMouseStroke(raw RawMouseStroke) (MouseStroke, error) {
	state := MouseState(raw.State)
	if state&^mouseStateKnown != 0 {
		return MouseStroke{}, ErrMouseStateBits
	}
	flags := MouseFlags(raw.Flags)
	if flags&^mouseFlagsKnown != 0 {
		return MouseStroke{}, ErrMouseFlagBits
	}
	return MouseStroke{
		State:       state,
		Flags:       flags,
		Rolling:     raw.Rolling,
		X:           raw.X,
		Y:           raw.Y,
		Information: raw.Information,
	}, nil
}

// DecodeKeyStroke validates a raw keyboard record and lifts it into a
// KeyStroke. Undefined state bits fail the record. An unlisted numeric key
// code does NOT fail: it decodes to ScanCodeEsc. That asymmetry is
// inherited driver-wrapper behavior; callers needing to distinguish real
// Esc presses from substituted unknowns must consult the raw record.
func DecodeKeyStroke(raw RawKeyStroke) (KeyStroke, error) {
	state := KeyState(raw.State)
	if state&^keyStateKnown != 0 {
		return KeyStroke{}, ErrKeyStateBits
	}
	code, known := scanCodeFromRaw(raw.Code)
	if !known {
		code = ScanCodeEsc
	}
	return KeyStroke{
		Code:        code,
		State:       state,
		Information: raw.Information,
	}, nil
}

// EncodeMouseStroke flattens a stroke into the driver's mouse record.
// It fails with ErrClassMismatch unless the stroke is a MouseStroke.
func EncodeMouseStroke(s Stroke) (RawMouseStroke, error) {
	m, ok := s.(MouseStroke)
	if !ok {
		return RawMouseStroke{}, ErrClassMismatch
	}
	return RawMouseStroke{
		State:       uint16(m.State),
		Flags:       uint16(m.Flags),
		Rolling:     m.Rolling,
		X:           m.X,
		Y:           m.Y,
		Information: m.Information,
	}, nil
}

// EncodeKeyStroke flattens a stroke into the driver's keyboard record.
// It fails with ErrClassMismatch unless the stroke is a KeyStroke.
func EncodeKeyStroke(s Stroke) (RawKeyStroke, error) {
	k, ok := s.(KeyStroke)
	if !ok {
		return RawKeyStroke{}, ErrClassMismatch
	}
	return RawKeyStroke{
		Code:        uint16(k.Code),
		State:       uint16(k.State),
		Information: k.Information,
	}, nil
}

// decodeMouseFilter interprets raw filter bits for a mouse device.
// Unknown bits yield the empty filter rather than an error; filter queries
// are diagnostics, not event data.
func decodeMouseFilter(raw uint16) MouseFilter {
	f := MouseFilter(raw)
	if f&^mouseFilterKnown != 0 {
		return MouseFilterNone
	}
	return f
}

// decodeKeyFilter is the keyboard counterpart of decodeMouseFilter.
func decodeKeyFilter(raw uint16) KeyFilter {
	f := KeyFilter(raw)
	if f&^keyFilterKnown != 0 {
		return KeyFilterNone
	}
	return f
}
