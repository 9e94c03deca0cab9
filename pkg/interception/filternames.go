package interception

import (
	"fmt"
	"strings"
)

// Symbolic filter names as used in configuration files and diagnostics.

var keyFilterNames = map[string]KeyFilter{
	"down":             KeyFilterDown,
	"up":               KeyFilterUp,
	"e0":               KeyFilterE0,
	"e1":               KeyFilterE1,
	"termsrv_set_led":  KeyFilterTermsrvSetLED,
	"termsrv_shadow":   KeyFilterTermsrvShadow,
	"termsrv_vkpacket": KeyFilterTermsrvVKPacket,
	"all":              KeyFilterAll,
}

var mouseFilterNames = map[string]MouseFilter{
	"left_button_down":   MouseFilterLeftButtonDown,
	"left_button_up":     MouseFilterLeftButtonUp,
	"right_button_down":  MouseFilterRightButtonDown,
	"right_button_up":    MouseFilterRightButtonUp,
	"middle_button_down": MouseFilterMiddleButtonDown,
	"middle_button_up":   MouseFilterMiddleButtonUp,
	"button_4_down":      MouseFilterButton4Down,
	"button_4_up":        MouseFilterButton4Up,
	"button_5_down":      MouseFilterButton5Down,
	"button_5_up":        MouseFilterButton5Up,
	"wheel":              MouseFilterWheel,
	"hwheel":             MouseFilterHWheel,
	"move":               MouseFilterMove,
	"all":                MouseFilterAll,
}

// ParseKeyFilter ORs together the named keyboard interest bits.
func ParseKeyFilter(names []string) (KeyFilter, error) {
	var f KeyFilter
	for _, name := range names {
		bit, ok := keyFilterNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown key filter %q", name)
		}
		f |= bit
	}
	return f, nil
}

// ParseMouseFilter ORs together the named mouse interest bits.
func ParseMouseFilter(names []string) (MouseFilter, error) {
	var f MouseFilter
	for _, name := range names {
		bit, ok := mouseFilterNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown mouse filter %q", name)
		}
		f |= bit
	}
	return f, nil
}

func (f KeyFilter) String() string {
	if f == KeyFilterNone {
		return "none"
	}
	if f == KeyFilterAll {
		return "all"
	}
	var parts []string
	for _, n := range []struct {
		bit  KeyFilter
		name string
	}{
		{KeyFilterDown, "down"},
		{KeyFilterUp, "up"},
		{KeyFilterE0, "e0"},
		{KeyFilterE1, "e1"},
		{KeyFilterTermsrvSetLED, "termsrv_set_led"},
		{KeyFilterTermsrvShadow, "termsrv_shadow"},
		{KeyFilterTermsrvVKPacket, "termsrv_vkpacket"},
	} {
		if f&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

func (f MouseFilter) String() string {
	if f == MouseFilterNone {
		return "none"
	}
	if f == MouseFilterAll {
		return "all"
	}
	var parts []string
	for _, n := range []struct {
		bit  MouseFilter
		name string
	}{
		{MouseFilterLeftButtonDown, "left_button_down"},
		{MouseFilterLeftButtonUp, "left_button_up"},
		{MouseFilterRightButtonDown, "right_button_down"},
		{MouseFilterRightButtonUp, "right_button_up"},
		{MouseFilterMiddleButtonDown, "middle_button_down"},
		{MouseFilterMiddleButtonUp, "middle_button_up"},
		{MouseFilterButton4Down, "button_4_down"},
		{MouseFilterButton4Up, "button_4_up"},
		{MouseFilterButton5Down, "button_5_down"},
		{MouseFilterButton5Up, "button_5_up"},
		{MouseFilterWheel, "wheel"},
		{MouseFilterHWheel, "hwheel"},
		{MouseFilterMove, "move"},
	} {
		if f&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
