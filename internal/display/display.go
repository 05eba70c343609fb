// Package display drives a 4-digit 7-segment module with hardware abstraction.
// The real implementation bit-bangs a TM1637 over two GPIO lines.
// The fake implementation records frames for testing.
package display

// Digits is the number of display positions.
const Digits = 4

// MaxBrightness is the brightest supported level.
const MaxBrightness = 7

// Driver renders decimal values or raw glyph patterns.
type Driver interface {
	// SetBrightness sets the panel brightness, 0 (dim) to 7 (full).
	SetBrightness(level int) error

	// ShowDecimal renders a 0..9999 value as four digits. Only the window of
	// `length` digits starting at `offset` is lit; digits outside it are
	// blanked. With leadingZero false, a zero in the leftmost digit renders
	// blank (the hour field of a 12-hour clock never needs it). colon lights
	// the center colon.
	ShowDecimal(value int, colon bool, leadingZero bool, length, offset int) error

	// ShowGlyphs renders four raw 7-segment bit patterns, for text labels.
	ShowGlyphs(glyphs [Digits]byte) error

	// Clear blanks all digits and the colon.
	Clear() error

	// Close blanks the display and releases GPIO resources.
	Close() error
}

// Segment bit assignments follow the TM1637 convention:
// bit 0 = A (top) .. bit 6 = G (middle), bit 7 = colon/dot.

// digitSegments encodes 0..9.
var digitSegments = [10]byte{
	0x3F, // 0
	0x06, // 1
	0x5B, // 2
	0x4F, // 3
	0x66, // 4
	0x6D, // 5
	0x7D, // 6
	0x07, // 7
	0x7F, // 8
	0x6F, // 9
}

// colonBit lights the center colon; the module routes it through the dot
// segment of the second digit.
const colonBit = 0x80

// Blank is an all-segments-off glyph.
const Blank = 0x00

// Label glyph patterns used by the controller's label modes.
var (
	GlyphsSet      = [Digits]byte{0x6D, 0x79, 0x78, Blank}  // "SEt "
	GlyphsAlarm    = [Digits]byte{0x77, 0x38, 0x77, 0x50}   // "ALAr"
	GlyphsAlarmOn  = [Digits]byte{0x3F, 0x54, Blank, Blank} // "On  "
	GlyphsAlarmOff = [Digits]byte{0x3F, 0x71, 0x71, Blank}  // "OFF "
)

func clampBrightness(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxBrightness {
		return MaxBrightness
	}
	return level
}

// encodeDecimal turns a 0..9999 value into the four segment bytes ShowDecimal
// renders, applying the window and leading-zero rules.
func encodeDecimal(value int, colon bool, leadingZero bool, length, offset int) [Digits]byte {
	var out [Digits]byte
	digits := [Digits]int{
		value / 1000 % 10,
		value / 100 % 10,
		value / 10 % 10,
		value % 10,
	}
	for i := 0; i < Digits; i++ {
		if i < offset || i >= offset+length {
			continue
		}
		if i == 0 && !leadingZero && digits[0] == 0 {
			continue
		}
		out[i] = digitSegments[digits[i]]
	}
	if colon {
		out[1] |= colonBit
	}
	return out
}
