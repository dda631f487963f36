// Package fingerprint implements the legacy content checksum.
//
// This is deliberately NOT a cryptographic digest. It is a 32-bit signed
// rolling hash (multiplier 31) over the UTF-16 code units of a payload's
// canonical string, preserved bit-for-bit from the reference behavior so
// that fingerprints remain comparable across implementations. The strong
// content address lives in the contentaddr package.
package fingerprint

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"xdao.co/plh/payload"
)

// Width is the minimum hex width of a rendered fingerprint.
const Width = 16

// Hash digests a canonical string.
//
// The accumulator wraps in 32-bit two's complement, exactly like
// h = (h<<5) - h + c truncated to int32 at every step. The output is the
// absolute value in lowercase hex, left-padded with '0' to Width. The
// magnitude is taken in 64-bit first so that -2^31 renders as "80000000"
// rather than overflowing.
func Hash(canonical string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(canonical)) {
		h = (h << 5) - h + int32(c)
	}

	m := int64(h)
	if m < 0 {
		m = -m
	}
	s := strconv.FormatInt(m, 16)
	if len(s) < Width {
		s = strings.Repeat("0", Width-len(s)) + s
	}
	return s
}

// Of digests a payload's canonical string.
func Of(p payload.Payload) string {
	return Hash(p.CanonicalString())
}
