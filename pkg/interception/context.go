package interception

import (
	"fmt"
	"math"
	"time"
	"unicode/utf16"

	"interceptd/pkg/bounded"
)

const (
	// hardwareIDCodeUnits sizes the context's UTF-16 scratch buffer for
	// hardware-id queries: 512 code units, 1024 bytes.
	hardwareIDCodeUnits = 512

	// maxBurst bounds the stack scratch arrays used to stage raw records
	// for one native send or receive call. Larger batches are chunked.
	maxBurst = 32
)

// Context owns one native driver handle for its entire lifetime.
//
// A Context is not safe for concurrent use: the hardware-id scratch buffer
// and the native handle are shared mutable state, and this layer takes no
// locks. Callers sharing a Context across goroutines must serialize access.
type Context struct {
	drv    nativeDriver
	handle uintptr
	closed bool
	hwid   [hardwareIDCodeUnits]uint16
}

// New creates a context against the platform driver. This is the only
// operation in the package that can fail outright; everything downstream
// degrades per element or substitutes defined defaults.
func New() (*Context, error) {
	return newContext(platformDrv)
}

func newContext(drv nativeDriver) (*Context, error) {
	h, err := drv.createContext()
	if err != nil {
		return nil, fmt.Errorf("interception: create context: %w", err)
	}
	return &Context{drv: drv, handle: h}, nil
}

// Close releases the native handle. The first call releases; later calls
// are no-ops. The context must not be used after Close.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.drv.destroyContext(c.handle)
	c.handle = 0
	return nil
}

// Precedence returns the delivery precedence the driver holds for device.
func (c *Context) Precedence(device Device) Precedence {
	return c.drv.getPrecedence(c.handle, device)
}

// SetPrecedence sets this context's delivery precedence for device. No
// validation beyond the driver's own.
func (c *Context) SetPrecedence(device Device, p Precedence) {
	c.drv.setPrecedence(c.handle, device, p)
}

// Filter returns the interest mask registered for device, typed by the
// device's class. An invalid device yields an empty KeyFilter; raw bits
// outside the known set yield an empty filter of the matching type. Filter
// queries degrade to empty rather than failing, unlike stroke decoding.
func (c *Context) Filter(device Device) Filter {
	if c.drv.isInvalid(device) {
		return KeyFilterNone
	}
	raw := c.drv.getFilter(c.handle, device)
	if c.drv.isMouse(device) {
		return decodeMouseFilter(raw)
	}
	return decodeKeyFilter(raw)
}

// SetFilter registers interest for the device class matching the filter's
// variant. Events outside the mask are passed through by the driver without
// surfacing here.
func (c *Context) SetFilter(filter Filter) {
	switch f := filter.(type) {
	case MouseFilter:
		c.drv.setFilter(c.handle, classMouse, uint16(f))
	case KeyFilter:
		c.drv.setFilter(c.handle, classKeyboard, uint16(f))
	}
}

// Wait blocks until some filtered device produces activity and returns its
// id. The only way out of a Wait is driver activity; use WaitTimeout when
// the caller needs to regain control.
func (c *Context) Wait() Device {
	return c.drv.wait(c.handle)
}

// WaitTimeout is Wait bounded by d. Durations whose millisecond count does
// not fit the driver's 32-bit timeout clamp to the maximum; negative
// durations clamp to zero. A timeout returns an invalid device id.
func (c *Context) WaitTimeout(d time.Duration) Device {
	ms := d.Milliseconds()
	switch {
	case ms < 0:
		ms = 0
	case ms > math.MaxUint32:
		ms = math.MaxUint32
	}
	return c.drv.waitWithTimeout(c.handle, uint32(ms))
}

// Send injects strokes into device's input stream and returns the count the
// driver accepted. A device that is neither mouse nor keyboard sends
// nothing. Strokes whose variant does not match the device class are
// dropped individually; survivors keep their relative order.
func (c *Context) Send(device Device, strokes []Stroke) int {
	switch {
	case c.drv.isMouse(device):
		return c.sendMouse(device, strokes)
	case c.drv.isKeyboard(device):
		return c.sendKeyboard(device, strokes)
	default:
		return 0
	}
}

func (c *Context) sendMouse(device Device, strokes []Stroke) int {
	var scratch [maxBurst]RawMouseStroke
	sent, n := 0, 0
	for _, s := range strokes {
		raw, err := EncodeMouseStroke(s)
		if err != nil {
			continue
		}
		scratch[n] = raw
		n++
		if n == maxBurst {
			sent += c.drv.sendMouse(c.handle, device, scratch[:n])
			n = 0
		}
	}
	if n > 0 {
		sent += c.drv.sendMouse(c.handle, device, scratch[:n])
	}
	return sent
}

func (c *Context) sendKeyboard(device Device, strokes []Stroke) int {
	var scratch [maxBurst]RawKeyStroke
	sent, n := 0, 0
	for _, s := range strokes {
		raw, err := EncodeKeyStroke(s)
		if err != nil {
			continue
		}
		scratch[n] = raw
		n++
		if n == maxBurst {
			sent += c.drv.sendKeyboard(c.handle, device, scratch[:n])
			n = 0
		}
	}
	if n > 0 {
		sent += c.drv.sendKeyboard(c.handle, device, scratch[:n])
	}
	return sent
}

// Receive drains pending strokes for device into buf and returns the valid
// prefix. A device that is neither mouse nor keyboard yields an empty view.
// Records that fail decode validation are dropped individually; survivors
// are compacted to the front of buf in arrival order. At most
// min(buf.Cap(), 32) records are drained per call.
func (c *Context) Receive(device Device, buf *bounded.Buffer[Stroke]) []Stroke {
	buf.Reset()
	switch {
	case c.drv.isMouse(device):
		c.receiveMouse(device, buf)
	case c.drv.isKeyboard(device):
		c.receiveKeyboard(device, buf)
	}
	return buf.Prefix()
}

func (c *Context) receiveMouse(device Device, buf *bounded.Buffer[Stroke]) {
	var scratch [maxBurst]RawMouseStroke
	n := min(buf.Cap(), maxBurst)
	got := c.drv.receiveMouse(c.handle, device, scratch[:n])
	// Trust only as many records as we offered room for.
	got = min(got, n)
	for i := 0; i < got; i++ {
		s, err := DecodeMouseStroke(scratch[i])
		if err != nil {
			continue
		}
		buf.Append(s)
	}
}

func (c *Context) receiveKeyboard(device Device, buf *bounded.Buffer[Stroke]) {
	var scratch [maxBurst]RawKeyStroke
	n := min(buf.Cap(), maxBurst)
	got := c.drv.receiveKeyboard(c.handle, device, scratch[:n])
	got = min(got, n)
	for i := 0; i < got; i++ {
		s, err := DecodeKeyStroke(scratch[i])
		if err != nil {
			continue
		}
		buf.Append(s)
	}
}

// HardwareID returns the device's hardware identifier, decoded from the
// driver's UTF-16 with U+FFFD substituted for ill-formed units. ok is false
// when the driver reports no identifier.
func (c *Context) HardwareID(device Device) (string, bool) {
	n := c.drv.hardwareID(c.handle, device, c.hwid[:])
	if n <= 0 {
		return "", false
	}
	units := min(n/2, hardwareIDCodeUnits)
	return string(utf16.Decode(c.hwid[:units])), true
}
