// Package conv formats integers without fmt or strconv, so the pinmux
// packages stay usable in TinyGo firmware.
package conv

const hexDigits = "0123456789abcdef"

// AppendHex32 appends n as 0x-prefixed lowercase hex without leading zeros.
func AppendHex32(dst []byte, n uint32) []byte { return AppendHex64(dst, uint64(n)) }

// AppendHex64 is AppendHex32 for 64-bit values such as physical addresses.
func AppendHex64(dst []byte, n uint64) []byte {
	var buf [18]byte
	i := len(buf)
	for {
		i--
		buf[i] = hexDigits[n&0xf]
		n >>= 4
		if n == 0 {
			break
		}
	}
	i--
	buf[i] = 'x'
	i--
	buf[i] = '0'
	return append(dst, buf[i:]...)
}

// AppendInt appends the base-10 form of n.
func AppendInt(dst []byte, n int) []byte {
	var buf [20]byte
	i := len(buf)
	u := uint64(n)
	if n < 0 {
		u = uint64(-int64(n))
	}
	for {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	if n < 0 {
		i--
		buf[i] = '-'
	}
	return append(dst, buf[i:]...)
}

// Hex32 returns AppendHex32 as a string.
func Hex32(n uint32) string { return string(AppendHex32(nil, n)) }

// Hex64 returns AppendHex64 as a string.
func Hex64(n uint64) string { return string(AppendHex64(nil, n)) }

// Itoa returns the base-10 form of n.
func Itoa(n int) string { return string(AppendInt(nil, n)) }
