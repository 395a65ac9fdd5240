package terminal

import "strings"

// SGR is a bitmask of graphic style modifiers (Select Graphic Rendition).
type SGR uint8

const (
	SGRBold SGR = 1 << iota
	SGRDim
	SGRItalic
	SGRUnderline
	SGRBlink
	SGRReverse
	SGRCrossedOut
)

// AllSGRs lists every individual modifier in the order a full graphic-state
// reassertion enables them.
var AllSGRs = []SGR{
	SGRBold,
	SGRDim,
	SGRItalic,
	SGRUnderline,
	SGRBlink,
	SGRReverse,
	SGRCrossedOut,
}

// Has reports whether every modifier in m is set.
func (s SGR) Has(m SGR) bool {
	return s&m == m
}

// With returns the set with the given modifiers added.
func (s SGR) With(m SGR) SGR {
	return s | m
}

// Without returns the set with the given modifiers removed.
func (s SGR) Without(m SGR) SGR {
	return s &^ m
}

func (s SGR) String() string {
	if s == 0 {
		return "none"
	}
	names := []string{"bold", "dim", "italic", "underline", "blink", "reverse", "crossedout"}
	var parts []string
	for i, m := range AllSGRs {
		if s.Has(m) {
			parts = append(parts, names[i])
		}
	}
	return strings.Join(parts, "|")
}
