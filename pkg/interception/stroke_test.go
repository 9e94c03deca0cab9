package interception

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMouseStrokeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  RawMouseStroke
	}{
		{
			name: "left click with relative move",
			raw:  RawMouseStroke{State: uint16(MouseLeftButtonDown), X: -4, Y: 11},
		},
		{
			name: "wheel with delta",
			raw:  RawMouseStroke{State: uint16(MouseWheel), Rolling: -120, Information: 0xDEADBEEF},
		},
		{
			name: "absolute virtual-desktop motion",
			raw: RawMouseStroke{
				Flags: uint16(MouseMoveAbsolute | MouseVirtualDesktop),
				X:     65535, Y: 32768,
			},
		},
		{
			name: "every defined state bit",
			raw:  RawMouseStroke{State: 0x0FFF, Flags: 0x10F},
		},
		{
			name: "all zero",
			raw:  RawMouseStroke{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stroke, err := DecodeMouseStroke(tt.raw)
			require.NoError(t, err)

			back, err := EncodeMouseStroke(stroke)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, back, "decode-then-encode must be bit-identical")
		})
	}
}

func TestKeyStrokeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  RawKeyStroke
	}{
		{name: "a down", raw: RawKeyStroke{Code: uint16(ScanCodeA), State: uint16(KeyDown)}},
		{name: "a up", raw: RawKeyStroke{Code: uint16(ScanCodeA), State: uint16(KeyUp)}},
		{name: "extended e0", raw: RawKeyStroke{Code: uint16(ScanCodeLeftCtrl), State: uint16(KeyUp | KeyE0)}},
		{name: "termsrv bits", raw: RawKeyStroke{Code: uint16(ScanCodeF12), State: 0x38, Information: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stroke, err := DecodeKeyStroke(tt.raw)
			require.NoError(t, err)

			back, err := EncodeKeyStroke(stroke)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, back)
		})
	}
}

func TestDecodeMouseStrokeRejectsUndefinedBits(t *testing.T) {
	_, err := DecodeMouseStroke(RawMouseStroke{State: 0x1000})
	assert.ErrorIs(t, err, ErrMouseStateBits, "the filter-only move bit is not a state")

	_, err = DecodeMouseStroke(RawMouseStroke{State: 0x8001})
	assert.ErrorIs(t, err, ErrMouseStateBits)

	_, err = DecodeMouseStroke(RawMouseStroke{Flags: 0x0010})
	assert.ErrorIs(t, err, ErrMouseFlagBits)

	_, err = DecodeMouseStroke(RawMouseStroke{Flags: 0x8000})
	assert.ErrorIs(t, err, ErrMouseFlagBits)
}

func TestDecodeKeyStrokeRejectsUndefinedBits(t *testing.T) {
	for _, state := range []uint16{0x04, 0x40, 0x80, 0xFFFF} {
		_, err := DecodeKeyStroke(RawKeyStroke{Code: uint16(ScanCodeA), State: state})
		assert.ErrorIs(t, err, ErrKeyStateBits, "state 0x%02X", state)
	}
}

func TestDecodeKeyStrokeUnknownCodeFallsBackToEsc(t *testing.T) {
	// Unknown codes substitute esc instead of failing the record; undefined
	// state bits fail it. The two paths are intentionally asymmetric.
	stroke, err := DecodeKeyStroke(RawKeyStroke{Code: 0xE5, State: uint16(KeyDown), Information: 3})
	require.NoError(t, err)
	assert.Equal(t, ScanCodeEsc, stroke.Code)
	assert.Equal(t, uint32(3), stroke.Information)
}

func TestEncodeClassMismatch(t *testing.T) {
	_, err := EncodeMouseStroke(KeyStroke{Code: ScanCodeA})
	assert.ErrorIs(t, err, ErrClassMismatch)

	_, err = EncodeKeyStroke(MouseStroke{State: MouseWheel})
	assert.ErrorIs(t, err, ErrClassMismatch)
}

func TestDecodeMouseFilter(t *testing.T) {
	assert.Equal(t, MouseFilterWheel|MouseFilterMove, decodeMouseFilter(0x1400))
	assert.Equal(t, MouseFilterAll, decodeMouseFilter(0x1FFF))
	assert.Equal(t, MouseFilterNone, decodeMouseFilter(0x2000), "unknown bits decode to empty")
}

func TestDecodeKeyFilter(t *testing.T) {
	assert.Equal(t, KeyFilterDown|KeyFilterUp, decodeKeyFilter(0x03))
	assert.Equal(t, KeyFilterNone, decodeKeyFilter(0x80), "unknown bits decode to empty")
}
