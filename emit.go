package salz

// emitParse implements C6: walks the chosen parse recorded in aux from
// position 0 to n by chosen length, writing a literal or factor token at
// each step, then appends 8 forced-literal tokens for the tail bytes that
// were deliberately excluded from the search (see §4.8). text must be the
// full source block (active region plus its 8-byte tail); n is the active
// length.
func emitParse(w *Writer, text []byte, n int, aux *Aux) error {
	for i := 0; i < n; {
		offset, length := aux.Decision(i)
		if length == 1 {
			if err := w.WriteBit(0); err != nil {
				return err
			}
			if err := w.WriteByte(text[i]); err != nil {
				return err
			}
		} else {
			if err := w.WriteBit(1); err != nil {
				return err
			}
			if err := writeFactorOffset(w, offset); err != nil {
				return err
			}
			if err := writeFactorLength(w, length); err != nil {
				return err
			}
		}
		i += int(length)
	}

	for i := n; i < n+8; i++ {
		if err := w.WriteBit(0); err != nil {
			return err
		}
		if err := w.WriteByte(text[i]); err != nil {
			return err
		}
	}

	return nil
}

func writeFactorOffset(w *Writer, d uint32) error {
	if err := w.WriteVNibble((d - 1) >> 8); err != nil {
		return err
	}
	return w.WriteByte(byte((d - 1) & 0xff))
}

func writeFactorLength(w *Writer, l uint32) error {
	return w.WriteGR3(l - 3)
}
