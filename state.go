package spn

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// DefaultGroupSize is the FormatState grouping used when none is given.
const DefaultGroupSize = 4

// FormatState renders state as digits split into space separated groups of
// groupSize, e.g. "0011 0011". A non-positive groupSize selects DefaultGroupSize.
func FormatState(state []byte, groupSize int) string {
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}
	digits := lo.Map(state, func(b byte, _ int) string {
		return strconv.Itoa(int(b))
	})
	groups := lo.Map(lo.Chunk(digits, groupSize), func(group []string, _ int) string {
		return strings.Join(group, "")
	})
	return strings.Join(groups, " ")
}

// ParseState reads a string of '0' and '1' characters into a state, the
// first character becoming bit 0. Whitespace, '_' and '|' are ignored so the
// output of FormatState parses back unchanged.
func ParseState(s string) ([]byte, error) {
	state := make([]byte, 0, len(s))
	for i, r := range s {
		switch {
		case r == '0' || r == '1':
			state = append(state, byte(r-'0'))
		case unicode.IsSpace(r) || r == '_' || r == '|':
		default:
			return nil, inputErrorf("ParseState", ErrInvalidBit, "character %q at offset %d", r, i)
		}
	}
	return state, nil
}

// StateFromBytes expands data into 8*len(data) bits, least significant bit
// of each byte first.
func StateFromBytes(data []byte) []byte {
	state := make([]byte, 8*len(data))
	for i, b := range data {
		putValue(state[8*i:8*i+8], int(b))
	}
	return state
}

// StateToBytes packs a state produced by StateFromBytes (or by a layer fed
// one) back into bytes. The state length must be a multiple of 8.
func StateToBytes(state []byte) ([]byte, error) {
	if len(state)%8 != 0 {
		return nil, inputErrorf("StateToBytes", ErrInvalidLength, "%d bits is not a whole number of bytes", len(state))
	}
	if err := checkState("StateToBytes", state, len(state)); err != nil {
		return nil, err
	}
	out := make([]byte, len(state)/8)
	for i := range out {
		out[i] = byte(bitsToValue(state[8*i : 8*i+8]))
	}
	return out, nil
}
