package salz

// decodeStream implements C7: the mirror of emitParse. It reads flag bits
// from r until the stream is exhausted, appending literal bytes directly
// and reproducing factors with a self-referential copy from earlier in
// dst, and returns the number of bytes written.
//
// Before the copy runs, every offset is checked against the output
// produced so far and every length against the capacity of dst (as is
// every literal); any violation is reported as
// ErrMalformedInput rather than trusted, per §7's requirement that every
// boundary access in the decoder be checked at runtime.
func decodeStream(r *Reader, dst []byte) (int, error) {
	pos := 0

	for !r.Empty() {
		flag, err := r.ReadBit()
		if err != nil {
			return 0, err
		}

		if flag == 0 {
			b, err := r.ReadByte()
			if err != nil {
				return 0, err
			}
			if pos >= len(dst) {
				return 0, ErrMalformedInput
			}
			dst[pos] = b
			pos++
			continue
		}

		offHigh, err := r.ReadVNibble()
		if err != nil {
			return 0, err
		}
		offLow, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		d := (offHigh << 8 | uint32(offLow)) + 1

		lenBase, err := r.ReadGR3()
		if err != nil {
			return 0, err
		}
		l := lenBase + 3

		if uint64(d) > uint64(pos) {
			return 0, ErrMalformedInput
		}
		if uint64(pos)+uint64(l) > uint64(len(dst)) {
			return 0, ErrMalformedInput
		}

		pos = copyOverlap(dst, pos, int(d), int(l))
	}

	return pos, nil
}

// copyOverlap reproduces a factor of length l at distance d, writing it
// from the current write position pos, and returns the new write position.
// When d < l the source positions catch up to the destination positions mid
// copy, so bytes already written during this same call must be visible to
// later reads -- a full-width slice copy would not reproduce that
// run-length semantic, so overlapping regions (every d < l, whatever d is)
// use a byte-wise loop. Non-overlapping regions (d >= l) copy 8 bytes at a
// time, finishing the remainder byte by byte.
func copyOverlap(dst []byte, pos, d, l int) int {
	src := pos - d
	end := pos + l

	if d >= l {
		for pos+8 <= end {
			copy(dst[pos:pos+8], dst[src:src+8])
			pos += 8
			src += 8
		}
		for pos < end {
			dst[pos] = dst[src]
			pos++
			src++
		}
		return end
	}

	for pos < end {
		dst[pos] = dst[src]
		pos++
		src++
	}
	return end
}
