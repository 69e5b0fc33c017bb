package scene

import (
	"fmt"
	"strings"
)

// Kind identifies one of the predefined circuit symbols.
type Kind int

const (
	KindUnknown Kind = iota
	KindResistor
	KindCapacitor
	KindInductor
	KindBattery
	KindSwitch
)

var kindNames = map[Kind]string{
	KindResistor:  "resistor",
	KindCapacitor: "capacitor",
	KindInductor:  "inductor",
	KindBattery:   "battery",
	KindSwitch:    "switch",
}

var kindLabels = map[Kind]string{
	KindResistor:  "Resistor",
	KindCapacitor: "Capacitor",
	KindInductor:  "Inductor",
	KindBattery:   "Battery",
	KindSwitch:    "Switch",
}

// Kinds lists every placeable kind in palette order.
func Kinds() []Kind {
	return []Kind{KindResistor, KindCapacitor, KindInductor, KindBattery, KindSwitch}
}

// String returns the lower-case identifier used in ids, icon paths and files.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Label returns the human readable name shown in the palette and properties.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return "Unknown"
}

// Valid reports whether k is one of the closed set of kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind converts an identifier such as "resistor" into a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("scene: unknown symbol kind %q", s)
}
