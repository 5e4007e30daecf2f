package hexconv

// Halfbyte maps hex digits of both cases to their values. Every other character maps to 0xff,
// so OR-ing two lookups exceeds 0x0f whenever either of them isn't a hex digit.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xff
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c-'a'+'A'] = c - 'a' + 10
	}

	return table
}()

// Is reports whether the char is a hex digit.
func Is(char byte) bool {
	return Halfbyte[char] != 0xff
}

// Byte decodes two hex digits into a byte. ok is false if either of them isn't a hex digit.
func Byte(hi, lo byte) (b byte, ok bool) {
	a, c := Halfbyte[hi], Halfbyte[lo]
	if a|c > 0x0f {
		return 0, false
	}

	return a<<4 | c, true
}
