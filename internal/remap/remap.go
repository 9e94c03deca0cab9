// Package remap substitutes scan codes in keyboard strokes according to a
// configured table. Mouse strokes and unmapped keys pass through untouched.
package remap

import (
	"fmt"

	"interceptd/pkg/interception"
)

// Table is a compiled scan-code substitution table.
type Table struct {
	codes map[interception.ScanCode]interception.ScanCode
}

// Compile resolves name-keyed rules ("caps_lock" -> "esc") into a Table.
func Compile(rules map[string]string) (*Table, error) {
	t := &Table{codes: make(map[interception.ScanCode]interception.ScanCode, len(rules))}
	for from, to := range rules {
		src, ok := interception.ScanCodeByName(from)
		if !ok {
			return nil, fmt.Errorf("remap: unknown source key %q", from)
		}
		dst, ok := interception.ScanCodeByName(to)
		if !ok {
			return nil, fmt.Errorf("remap: unknown target key %q", to)
		}
		t.codes[src] = dst
	}
	return t, nil
}

// Len returns the number of compiled rules.
func (t *Table) Len() int { return len(t.codes) }

// Apply returns the stroke with its code substituted when a rule matches.
// State and information are preserved: a remapped down stays a down.
func (t *Table) Apply(s interception.Stroke) interception.Stroke {
	k, ok := s.(interception.KeyStroke)
	if !ok {
		return s
	}
	if dst, ok := t.codes[k.Code]; ok {
		k.Code = dst
	}
	return k
}

// ApplyAll rewrites strokes in place, preserving order.
func (t *Table) ApplyAll(strokes []interception.Stroke) {
	if len(t.codes) == 0 {
		return
	}
	for i, s := range strokes {
		strokes[i] = t.Apply(s)
	}
}
