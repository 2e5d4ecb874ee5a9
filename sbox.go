package spn

import "slices"

const (
	// MinSBoxBits and MaxSBoxBits bound the width accepted by NewSBox.
	MinSBoxBits = 1
	MaxSBoxBits = 16

	// DefaultSBoxBits is the width of the default table.
	DefaultSBoxBits = 4
)

// defaultTable is the 4-bit S-box used when NewSBox is given a nil table.
var defaultTable = []int{
	0xC, 0x5, 0x6, 0xB, 0x9, 0x0, 0xA, 0xD,
	0x3, 0xE, 0xF, 0x8, 0x4, 0x7, 0x1, 0x2,
}

// SBox is an invertible substitution on bits-wide values.
// It is immutable once built and safe for concurrent use.
type SBox struct {
	bits    int
	table   []int
	inverse []int
}

// NewSBox validates table as a bijection on [0, 2^bits) and returns the
// corresponding S-box. A nil table selects the default 4-bit table.
// The table is copied; later changes to it have no effect.
func NewSBox(table []int, bits int) (*SBox, error) {
	if bits < MinSBoxBits || bits > MaxSBoxBits {
		return nil, configErrorf("SBox", ErrInvalidSBox, "width %d outside [%d, %d]", bits, MinSBoxBits, MaxSBoxBits)
	}
	if table == nil {
		table = defaultTable
	}

	size := 1 << bits
	if len(table) != size {
		return nil, configErrorf("SBox", ErrInvalidSBox, "table has %d entries, want %d", len(table), size)
	}

	inverse, err := computeInverse("SBox", ErrInvalidSBox, table)
	if err != nil {
		return nil, err
	}

	return &SBox{
		bits:    bits,
		table:   slices.Clone(table),
		inverse: inverse,
	}, nil
}

// DefaultSBox returns the default 4-bit S-box.
func DefaultSBox() *SBox {
	s, err := NewSBox(nil, DefaultSBoxBits)
	if err != nil {
		panic("default SBOX table is not a bijection: " + err.Error())
	}
	return s
}

// computeInverse returns inv with inv[table[i]] = i. It fails when an entry
// is outside [0, len(table)) or repeated, which together mean table is not a
// bijection.
func computeInverse(component string, sentinel error, table []int) ([]int, error) {
	n := len(table)
	inv := make([]int, n)
	seen := make([]bool, n)
	for i, v := range table {
		if v < 0 || v >= n {
			return nil, configErrorf(component, sentinel, "entry %d maps to %d, outside [0, %d)", i, v, n)
		}
		if seen[v] {
			return nil, configErrorf(component, sentinel, "entry %d repeats value %d", i, v)
		}
		seen[v] = true
		inv[v] = i
	}
	return inv, nil
}

// Bits returns the S-box width.
func (s *SBox) Bits() int { return s.bits }

// Size returns the number of table entries, 2^Bits().
func (s *SBox) Size() int { return len(s.table) }

// Table returns a copy of the forward table.
func (s *SBox) Table() []int { return slices.Clone(s.table) }

// Inverse returns a copy of the inverse table.
func (s *SBox) Inverse() []int { return slices.Clone(s.inverse) }

// Encode substitutes the value held in bits, least significant bit first,
// and returns the result in the same layout.
func (s *SBox) Encode(bits []byte) ([]byte, error) {
	return s.apply("SBox.Encode", s.table, bits)
}

// Decode undoes Encode.
func (s *SBox) Decode(bits []byte) ([]byte, error) {
	return s.apply("SBox.Decode", s.inverse, bits)
}

// Lookup returns table[x].
func (s *SBox) Lookup(x int) (int, error) {
	if x < 0 || x >= len(s.table) {
		return 0, inputErrorf("SBox.Lookup", ErrOutOfRange, "%d outside [0, %d)", x, len(s.table))
	}
	return s.table[x], nil
}

// InverseLookup returns the x for which Lookup(x) == y.
func (s *SBox) InverseLookup(y int) (int, error) {
	if y < 0 || y >= len(s.inverse) {
		return 0, inputErrorf("SBox.InverseLookup", ErrOutOfRange, "%d outside [0, %d)", y, len(s.inverse))
	}
	return s.inverse[y], nil
}

func (s *SBox) apply(op string, table []int, bits []byte) ([]byte, error) {
	if err := checkState(op, bits, s.bits); err != nil {
		return nil, err
	}
	out := make([]byte, s.bits)
	putValue(out, table[bitsToValue(bits)])
	return out, nil
}

// bitsToValue reads a little-endian bit slice as an integer.
func bitsToValue(bits []byte) int {
	x := 0
	for i, b := range bits {
		x |= int(b) << i
	}
	return x
}

// putValue writes the low len(dst) bits of v into dst, least significant first.
func putValue(dst []byte, v int) {
	for i := range dst {
		dst[i] = byte(v>>i) & 1
	}
}
