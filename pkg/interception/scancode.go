package interception

import (
	"fmt"
	"strings"
)

// ScanCode is a PC set-1 make code as reported by the driver. Extended keys
// (right ctrl, arrow cluster, ...) reuse these codes with the E0/E1 state
// bits set; they are not separate table entries.
type ScanCode uint16

const (
	ScanCodeEsc         ScanCode = 0x01
	ScanCode1           ScanCode = 0x02
	ScanCode2           ScanCode = 0x03
	ScanCode3           ScanCode = 0x04
	ScanCode4           ScanCode = 0x05
	ScanCode5           ScanCode = 0x06
	ScanCode6           ScanCode = 0x07
	ScanCode7           ScanCode = 0x08
	ScanCode8           ScanCode = 0x09
	ScanCode9           ScanCode = 0x0A
	ScanCode0           ScanCode = 0x0B
	ScanCodeMinus       ScanCode = 0x0C
	ScanCodeEqual       ScanCode = 0x0D
	ScanCodeBackspace   ScanCode = 0x0E
	ScanCodeTab         ScanCode = 0x0F
	ScanCodeQ           ScanCode = 0x10
	ScanCodeW           ScanCode = 0x11
	ScanCodeE           ScanCode = 0x12
	ScanCodeR           ScanCode = 0x13
	ScanCodeT           ScanCode = 0x14
	ScanCodeY           ScanCode = 0x15
	ScanCodeU           ScanCode = 0x16
	ScanCodeI           ScanCode = 0x17
	ScanCodeO           ScanCode = 0x18
	ScanCodeP           ScanCode = 0x19
	ScanCodeLeftBrace   ScanCode = 0x1A
	ScanCodeRightBrace  ScanCode = 0x1B
	ScanCodeEnter       ScanCode = 0x1C
	ScanCodeLeftCtrl    ScanCode = 0x1D
	ScanCodeA           ScanCode = 0x1E
	ScanCodeS           ScanCode = 0x1F
	ScanCodeD           ScanCode = 0x20
	ScanCodeF           ScanCode = 0x21
	ScanCodeG           ScanCode = 0x22
	ScanCodeH           ScanCode = 0x23
	ScanCodeJ           ScanCode = 0x24
	ScanCodeK           ScanCode = 0x25
	ScanCodeL           ScanCode = 0x26
	ScanCodeSemicolon   ScanCode = 0x27
	ScanCodeApostrophe  ScanCode = 0x28
	ScanCodeGrave       ScanCode = 0x29
	ScanCodeLeftShift   ScanCode = 0x2A
	ScanCodeBackslash   ScanCode = 0x2B
	ScanCodeZ           ScanCode = 0x2C
	ScanCodeX           ScanCode = 0x2D
	ScanCodeC           ScanCode = 0x2E
	ScanCodeV           ScanCode = 0x2F
	ScanCodeB           ScanCode = 0x30
	ScanCodeN           ScanCode = 0x31
	ScanCodeM           ScanCode = 0x32
	ScanCodeComma       ScanCode = 0x33
	ScanCodeDot         ScanCode = 0x34
	ScanCodeSlash       ScanCode = 0x35
	ScanCodeRightShift  ScanCode = 0x36
	ScanCodeNumpadStar  ScanCode = 0x37
	ScanCodeLeftAlt     ScanCode = 0x38
	ScanCodeSpace       ScanCode = 0x39
	ScanCodeCapsLock    ScanCode = 0x3A
	ScanCodeF1          ScanCode = 0x3B
	ScanCodeF2          ScanCode = 0x3C
	ScanCodeF3          ScanCode = 0x3D
	ScanCodeF4          ScanCode = 0x3E
	ScanCodeF5          ScanCode = 0x3F
	ScanCodeF6          ScanCode = 0x40
	ScanCodeF7          ScanCode = 0x41
	ScanCodeF8          ScanCode = 0x42
	ScanCodeF9          ScanCode = 0x43
	ScanCodeF10         ScanCode = 0x44
	ScanCodeNumLock     ScanCode = 0x45
	ScanCodeScrollLock  ScanCode = 0x46
	ScanCodeNumpad7     ScanCode = 0x47
	ScanCodeNumpad8     ScanCode = 0x48
	ScanCodeNumpad9     ScanCode = 0x49
	ScanCodeNumpadMinus ScanCode = 0x4A
	ScanCodeNumpad4     ScanCode = 0x4B
	ScanCodeNumpad5     ScanCode = 0x4C
	ScanCodeNumpad6     ScanCode = 0x4D
	ScanCodeNumpadPlus  ScanCode = 0x4E
	ScanCodeNumpad1     ScanCode = 0x4F
	ScanCodeNumpad2     ScanCode = 0x50
	ScanCodeNumpad3     ScanCode = 0x51
	ScanCodeNumpad0     ScanCode = 0x52
	ScanCodeNumpadDot   ScanCode = 0x53
	ScanCodeSysRq       ScanCode = 0x54
	ScanCodeIntl102     ScanCode = 0x56
	ScanCodeF11         ScanCode = 0x57
	ScanCodeF12         ScanCode = 0x58
)

var scanCodeNames = map[ScanCode]string{
	ScanCodeEsc:         "esc",
	ScanCode1:           "1",
	ScanCode2:           "2",
	ScanCode3:           "3",
	ScanCode4:           "4",
	ScanCode5:           "5",
	ScanCode6:           "6",
	ScanCode7:           "7",
	ScanCode8:           "8",
	ScanCode9:           "9",
	ScanCode0:           "0",
	ScanCodeMinus:       "minus",
	ScanCodeEqual:       "equal",
	ScanCodeBackspace:   "backspace",
	ScanCodeTab:         "tab",
	ScanCodeQ:           "q",
	ScanCodeW:           "w",
	ScanCodeE:           "e",
	ScanCodeR:           "r",
	ScanCodeT:           "t",
	ScanCodeY:           "y",
	ScanCodeU:           "u",
	ScanCodeI:           "i",
	ScanCodeO:           "o",
	ScanCodeP:           "p",
	ScanCodeLeftBrace:   "left_brace",
	ScanCodeRightBrace:  "right_brace",
	ScanCodeEnter:       "enter",
	ScanCodeLeftCtrl:    "left_ctrl",
	ScanCodeA:           "a",
	ScanCodeS:           "s",
	ScanCodeD:           "d",
	ScanCodeF:           "f",
	ScanCodeG:           "g",
	ScanCodeH:           "h",
	ScanCodeJ:           "j",
	ScanCodeK:           "k",
	ScanCodeL:           "l",
	ScanCodeSemicolon:   "semicolon",
	ScanCodeApostrophe:  "apostrophe",
	ScanCodeGrave:       "grave",
	ScanCodeLeftShift:   "left_shift",
	ScanCodeBackslash:   "backslash",
	ScanCodeZ:           "z",
	ScanCodeX:           "x",
	ScanCodeC:           "c",
	ScanCodeV:           "v",
	ScanCodeB:           "b",
	ScanCodeN:           "n",
	ScanCodeM:           "m",
	ScanCodeComma:       "comma",
	ScanCodeDot:         "dot",
	ScanCodeSlash:       "slash",
	ScanCodeRightShift:  "right_shift",
	ScanCodeNumpadStar:  "numpad_star",
	ScanCodeLeftAlt:     "left_alt",
	ScanCodeSpace:       "space",
	ScanCodeCapsLock:    "caps_lock",
	ScanCodeF1:          "f1",
	ScanCodeF2:          "f2",
	ScanCodeF3:          "f3",
	ScanCodeF4:          "f4",
	ScanCodeF5:          "f5",
	ScanCodeF6:          "f6",
	ScanCodeF7:          "f7",
	ScanCodeF8:          "f8",
	ScanCodeF9:          "f9",
	ScanCodeF10:         "f10",
	ScanCodeNumLock:     "num_lock",
	ScanCodeScrollLock:  "scroll_lock",
	ScanCodeNumpad7:     "numpad_7",
	ScanCodeNumpad8:     "numpad_8",
	ScanCodeNumpad9:     "numpad_9",
	ScanCodeNumpadMinus: "numpad_minus",
	ScanCodeNumpad4:     "numpad_4",
	ScanCodeNumpad5:     "numpad_5",
	ScanCodeNumpad6:     "numpad_6",
	ScanCodeNumpadPlus:  "numpad_plus",
	ScanCodeNumpad1:     "numpad_1",
	ScanCodeNumpad2:     "numpad_2",
	ScanCodeNumpad3:     "numpad_3",
	ScanCodeNumpad0:     "numpad_0",
	ScanCodeNumpadDot:   "numpad_dot",
	ScanCodeSysRq:       "sysrq",
	ScanCodeIntl102:     "intl_102",
	ScanCodeF11:         "f11",
	ScanCodeF12:         "f12",
}

// scanCodesByName is the inverse of scanCodeNames, for config lookups.
var scanCodesByName = func() map[string]ScanCode {
	m := make(map[string]ScanCode, len(scanCodeNames))
	for code, name := range scanCodeNames {
		m[name] = code
	}
	return m
}()

// scanCodeFromRaw reports whether the numeric code is in the known table.
func scanCodeFromRaw(code uint16) (ScanCode, bool) {
	sc := ScanCode(code)
	_, ok := scanCodeNames[sc]
	return sc, ok
}

// ScanCodeByName resolves a symbolic key name ("caps_lock", "f5", ...) as
// used in configuration files. Lookup is case-insensitive.
func ScanCodeByName(name string) (ScanCode, bool) {
	sc, ok := scanCodesByName[strings.ToLower(strings.TrimSpace(name))]
	return sc, ok
}

// String returns the symbolic name, or the hex code for values outside the
// table (possible when a ScanCode is constructed from an arbitrary uint16).
func (sc ScanCode) String() string {
	if name, ok := scanCodeNames[sc]; ok {
		return name
	}
	return fmt.Sprintf("scancode(0x%02X)", uint16(sc))
}
