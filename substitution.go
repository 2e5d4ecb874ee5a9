package spn

// SubstitutionLayer applies an ordered array of S-boxes to consecutive,
// non-overlapping slices of a state: S-box i owns bits [i*w, (i+1)*w) where
// w is the common S-box width.
type SubstitutionLayer struct {
	sboxes []*SBox
	width  int
	length int
}

// NewSubstitutionLayer builds a layer over sboxes for a state of length
// bits. All S-boxes must share one width and length must equal
// width*len(sboxes).
func NewSubstitutionLayer(sboxes []*SBox, length int) (*SubstitutionLayer, error) {
	if len(sboxes) == 0 {
		return nil, configErrorf("SubstitutionLayer", ErrInvalidLayer, "no SBOXes")
	}
	for i, s := range sboxes {
		if s == nil {
			return nil, configErrorf("SubstitutionLayer", ErrInvalidLayer, "SBOX %d is nil", i)
		}
	}

	width, size := sboxes[0].Bits(), sboxes[0].Size()
	for i, s := range sboxes[1:] {
		if s.Bits() != width || s.Size() != size {
			return nil, configErrorf("SubstitutionLayer", ErrInvalidLayer,
				"SBOX %d is %d bits wide, SBOX 0 is %d", i+1, s.Bits(), width)
		}
	}

	if length != width*len(sboxes) {
		return nil, configErrorf("SubstitutionLayer", ErrInvalidLayer,
			"length %d does not match %d SBOXes of %d bits", length, len(sboxes), width)
	}

	return &SubstitutionLayer{
		sboxes: append([]*SBox(nil), sboxes...),
		width:  width,
		length: length,
	}, nil
}

// Length returns the state width in bits.
func (l *SubstitutionLayer) Length() int { return l.length }

// Width returns the width of each S-box.
func (l *SubstitutionLayer) Width() int { return l.width }

// Len returns the number of S-boxes.
func (l *SubstitutionLayer) Len() int { return len(l.sboxes) }

// Encrypt passes each slice of state through its S-box and returns the
// concatenated result in a new buffer.
func (l *SubstitutionLayer) Encrypt(state []byte) ([]byte, error) {
	return l.apply("SubstitutionLayer.Encrypt", state, (*SBox).Encode)
}

// Decrypt undoes Encrypt.
func (l *SubstitutionLayer) Decrypt(state []byte) ([]byte, error) {
	return l.apply("SubstitutionLayer.Decrypt", state, (*SBox).Decode)
}

func (l *SubstitutionLayer) apply(op string, state []byte, fn func(*SBox, []byte) ([]byte, error)) ([]byte, error) {
	if err := checkState(op, state, l.length); err != nil {
		return nil, err
	}

	out := make([]byte, 0, l.length)
	for i, s := range l.sboxes {
		// state was checked above, so the S-box cannot reject its slice.
		chunk, err := fn(s, state[i*l.width:(i+1)*l.width])
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}
