// Package seed derives stable animation seeds from dataset rows.
//
// The hash is the classic Java-style rolling hash h = h*31 + c over the
// UTF-16 code units of the text, computed in wrapping 32-bit signed
// arithmetic, with the absolute value taken at the end. The result is
// identical across runs and platforms.
package seed

import (
	"strconv"
	"unicode/utf16"
)

// Delimiter separates the raw value from the row index in [ForRow].
const Delimiter = "_"

// Hash returns the non-negative rolling hash of text. Hash("") is 0.
func Hash(text string) uint32 {
	var h int32
	for _, c := range utf16.Encode([]rune(text)) {
		h = h<<5 - h + int32(c)
	}
	if h < 0 {
		// Negating in uint32 keeps math.MinInt32 at 2147483648.
		return uint32(-int64(h))
	}
	return uint32(h)
}

// ForRow returns the seed for the row at index whose value-column cell is raw.
// Equal raw values on different rows yield different seeds.
func ForRow(raw string, index int) uint32 {
	return Hash(raw + Delimiter + strconv.Itoa(index))
}
