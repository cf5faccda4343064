package msxconv

import (
	"fmt"
	"strings"
)

// Mode selects the screen format of a conversion
type Mode int

// Supported modes
const (
	Screen5 Mode = iota + 1
	Screen7
	Screen8
	Screen12
)

var modeNames = map[Mode]string{
	Screen5:  "screen5",
	Screen7:  "screen7",
	Screen8:  "screen8",
	Screen12: "screen12",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Size returns the resolution in pixels that the mode encodes. Unknown modes
// return zero.
func (m Mode) Size() (width, height int) {
	switch m {
	case Screen5, Screen8, Screen12:
		return 256, screenHeight
	case Screen7:
		return 512, screenHeight
	default:
		return 0, 0
	}
}

// ParseMode returns the mode with the given name, such as "screen5"
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, &UnsupportedModeError{Mode: s}
}

// UnsupportedModeError is returned for a mode that has no encoder
type UnsupportedModeError struct {
	Mode string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("msxconv: unsupported mode: %q", e.Mode)
}
