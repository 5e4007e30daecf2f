package urlencoded

import (
	"github.com/indigo-web/utils/uf"

	"github.com/indigo-web/webserv/internal/hexconv"
)

// Decode decodes percent-encoded sequences and pluses (as spaces) of src, appending the result
// to dst. A percent sign without two hex digits following it is not an escape and is copied as
// is. If src contains nothing to decode, it is returned itself and dst stays untouched. `dst`
// can be src[:0] as well in order to decode "into itself", as the output never outgrows the
// input.
func Decode(src, dst []byte) (decoded, buffer []byte) {
	dsthead := len(dst)
	modified := false

loop:
	for i, c := range src {
		switch c {
		case '+':
			modified = true
			dst = append(dst, src[:i]...)
			dst = append(dst, ' ')
			src = src[i+1:]
			goto loop
		case '%':
			if len(src)-i < 3 {
				continue
			}

			char, ok := hexconv.Byte(src[i+1], src[i+2])
			if !ok {
				continue
			}

			modified = true
			dst = append(dst, src[:i]...)
			dst = append(dst, char)
			src = src[i+3:]
			goto loop
		}
	}

	if !modified {
		return src, dst
	}

	dst = append(dst, src...)
	return dst[dsthead:], dst
}

// DecodeString is Decode for strings. The result may share memory with buff.
func DecodeString(src string, buff []byte) (decoded string, buffer []byte) {
	d, buffer := Decode(uf.S2B(src), buff)
	return uf.B2S(d), buffer
}
