package salz

import "github.com/salzgo/salz/internal/sufsort"

// Block type tags stored in the 1-byte header field.
const (
	typePlain byte = 0
	typeSalz  byte = 1
)

// headerLen is the fixed size of the block header: 1 type byte followed
// by a 3-byte big-endian payload length.
const headerLen = 4

// MaxEncodedLen returns the worst-case size of EncodeBlock's output for an
// input of srcLen bytes: the 4-byte header, the plain-fallback payload,
// and the bit-register slack BitStream may reserve.
func MaxEncodedLen(srcLen int) int {
	return headerLen + srcLen + ceilDiv(srcLen, 64)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func writeHeader(dst []byte, typ byte, payloadLen int) {
	dst[0] = typ
	dst[1] = byte(payloadLen >> 16)
	dst[2] = byte(payloadLen >> 8)
	dst[3] = byte(payloadLen)
}

func readHeader(src []byte) (typ byte, payloadLen int, err error) {
	if len(src) < headerLen {
		return 0, 0, ErrMalformedInput
	}
	typ = src[0]
	payloadLen = int(src[1])<<16 | int(src[2])<<8 | int(src[3])
	return typ, payloadLen, nil
}

// EncodeBlock implements C8's encode entry point: it factorizes src with
// an exact suffix-array-driven parse, emits the bit-optimal SALZ encoding,
// and falls back to a verbatim PLAIN block if the SALZ stream would not
// have paid for its own overhead. dst must have at least
// MaxEncodedLen(len(src)) bytes of capacity. stats, if non-nil, is
// populated with diagnostic counts from the chosen parse; it is left
// untouched when the PLAIN fallback is taken, since there is no parse to
// report on.
//
// EncodeBlock fails with ErrInputTooSmall if len(src) < 9, ErrOutputTooSmall
// if dst is undersized, and ErrSortFailed if the suffix-sort collaborator
// reports failure. On any error dst's contents are unspecified; no
// partial result is committed.
func EncodeBlock(src, dst []byte, stats *Stats) (int, error) {
	if len(src) < 9 {
		return 0, ErrInputTooSmall
	}
	need := MaxEncodedLen(len(src))
	if len(dst) < need {
		return 0, ErrOutputTooSmall
	}

	n := len(src) - 8

	sa := make([]int32, n+2)
	sa[0] = noPos
	sa[n+1] = noPos
	if err := sufsort.Sort(src[:n], sa[1:n+1]); err != nil {
		return 0, ErrSortFailed
	}

	aux := NewAux(n)
	DerivePsvNsv(sa, aux)
	Factorize(src[:n], aux)
	Optimize(n, aux)

	bodyCap := len(src) + ceilDiv(len(src), 64)
	w := NewWriter(make([]byte, bodyCap))
	err := emitParse(w, src, n, aux)
	bodyLen := 0
	if err == nil {
		bodyLen, err = w.Finish()
	}
	// bodyCap is at least n+9, so a stream that overflows the scratch
	// buffer is one the PLAIN fallback below would take anyway.
	if err != nil && err != ErrOutputTooSmall {
		return 0, err
	}

	if err != nil || bodyLen >= n+9 {
		writeHeader(dst, typePlain, len(src))
		copy(dst[headerLen:], src)
		return headerLen + len(src), nil
	}

	if stats != nil {
		stats.fill(aux, n)
	}

	writeHeader(dst, typeSalz, bodyLen)
	copy(dst[headerLen:], w.buf[:bodyLen])
	return headerLen + bodyLen, nil
}

// DecodeBlock implements C8's decode entry point: it reads the 4-byte
// header and either copies a PLAIN payload verbatim or runs the Decoder
// over a SALZ payload. It fails with ErrMalformedInput if the header is
// absent or unrecognized, the declared payload length exceeds the
// remaining input, or any bitstream token would over-read or reference an
// out-of-bounds offset/length. It fails with ErrOutputTooSmall if dst
// cannot hold a PLAIN payload; a SALZ payload that would write past the
// end of dst is reported as ErrMalformedInput.
func DecodeBlock(src, dst []byte) (int, error) {
	typ, payloadLen, err := readHeader(src)
	if err != nil {
		return 0, err
	}
	if headerLen+payloadLen > len(src) {
		return 0, ErrMalformedInput
	}
	payload := src[headerLen : headerLen+payloadLen]

	switch typ {
	case typePlain:
		if len(dst) < payloadLen {
			return 0, ErrOutputTooSmall
		}
		copy(dst, payload)
		return payloadLen, nil
	case typeSalz:
		r := NewReader(payload)
		return decodeStream(r, dst)
	default:
		return 0, ErrMalformedInput
	}
}
