package spn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bijections returns a few bijective tables of size 2^bits: identity,
// reversal and rotation by one.
func bijections(bits int) [][]int {
	n := 1 << bits
	identity := make([]int, n)
	reversed := make([]int, n)
	rotated := make([]int, n)
	for i := 0; i < n; i++ {
		identity[i] = i
		reversed[i] = n - 1 - i
		rotated[i] = (i + 1) % n
	}
	return [][]int{identity, reversed, rotated}
}

// TestSBoxDefaultScenario checks the default table maps 0 to 0xC.
func TestSBoxDefaultScenario(t *testing.T) {
	s, err := NewSBox(nil, 4)
	require.NoError(t, err)

	out, err := s.Encode([]byte{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 1}, out)

	back, err := s.Decode([]byte{0, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, back)

	assert.Equal(t, 4, s.Bits())
	assert.Equal(t, 16, s.Size())
	assert.Equal(t, defaultTable, s.Table())
}

// TestSBoxRoundTrip decodes every encoded value for widths 1 to 4.
func TestSBoxRoundTrip(t *testing.T) {
	for bits := 1; bits <= 4; bits++ {
		for _, table := range append(bijections(bits), nil) {
			if table == nil && bits != DefaultSBoxBits {
				continue
			}
			s, err := NewSBox(table, bits)
			require.NoError(t, err)

			seen := make(map[int]bool)
			for x := 0; x < 1<<bits; x++ {
				in := make([]byte, bits)
				putValue(in, x)

				enc, err := s.Encode(in)
				require.NoError(t, err)
				seen[bitsToValue(enc)] = true

				dec, err := s.Decode(enc)
				require.NoError(t, err)
				assert.Equal(t, in, dec, "bits=%d x=%d", bits, x)
			}
			assert.Len(t, seen, 1<<bits, "Encode must be a bijection for bits=%d", bits)
		}
	}
}

// TestSBoxInverseTable checks inverse[table[i]] == i.
func TestSBoxInverseTable(t *testing.T) {
	s := DefaultSBox()
	table, inverse := s.Table(), s.Inverse()
	for i, v := range table {
		assert.Equal(t, i, inverse[v])
	}
}

// TestSBoxInvalidTables verifies every malformed table is a configuration error.
func TestSBoxInvalidTables(t *testing.T) {
	testCases := []struct {
		name  string
		table []int
		bits  int
	}{
		{"too_short", []int{0, 1, 2}, 2},
		{"too_long", []int{0, 1, 2, 3, 4}, 2},
		{"duplicate", []int{0, 1, 1, 3}, 2},
		{"negative", []int{0, 1, -2, 3}, 2},
		{"out_of_range", []int{0, 1, 2, 4}, 2},
		{"default_wrong_width", nil, 3},
		{"zero_width", []int{0}, 0},
		{"too_wide", nil, MaxSBoxBits + 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSBox(tc.table, tc.bits)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrInvalidSBox)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.NotErrorIs(t, err, ErrInput)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "SBox", cfgErr.Component)
		})
	}
}

// TestSBoxInputErrors checks length and bit validation on Encode and Decode.
func TestSBoxInputErrors(t *testing.T) {
	s := DefaultSBox()

	_, err := s.Encode([]byte{0, 1, 0})
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.ErrorIs(t, err, ErrInput)

	_, err = s.Decode([]byte{0, 1, 0, 0, 1})
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = s.Encode([]byte{0, 2, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidBit)

	var inErr *InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, "SBox.Encode", inErr.Op)
}

// TestSBoxCopiesTable ensures the caller's table is not aliased.
func TestSBoxCopiesTable(t *testing.T) {
	table := []int{1, 0, 3, 2}
	s, err := NewSBox(table, 2)
	require.NoError(t, err)

	table[0] = 0
	got, err := s.Lookup(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	s.Table()[0] = 3
	assert.Equal(t, []int{1, 0, 3, 2}, s.Table())
}

// TestSBoxLookup covers the integer forms.
func TestSBoxLookup(t *testing.T) {
	s := DefaultSBox()
	for x := 0; x < s.Size(); x++ {
		y, err := s.Lookup(x)
		require.NoError(t, err)
		back, err := s.InverseLookup(y)
		require.NoError(t, err)
		assert.Equal(t, x, back)
	}

	_, err := s.Lookup(16)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.InverseLookup(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, err, ErrInput)
}
