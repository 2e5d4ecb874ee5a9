package spn

import (
	"slices"

	"github.com/samber/lo"
)

// PermutationLayer moves every bit of a state to a fixed new position.
// Bit i of the input lands at position Permutation()[i] of the output.
type PermutationLayer struct {
	perm    []int
	inverse []int
}

// NewPermutationLayer builds a layer from perm, where perm[i] is the
// destination of input bit i. perm must be a bijection on {0, ..., len(perm)-1}.
func NewPermutationLayer(perm []int) (*PermutationLayer, error) {
	if len(perm) == 0 {
		return nil, configErrorf("PermutationLayer", ErrInvalidPermutation, "empty permutation")
	}

	inverse, err := computeInverse("PermutationLayer", ErrInvalidPermutation, perm)
	if err != nil {
		return nil, err
	}

	return &PermutationLayer{
		perm:    slices.Clone(perm),
		inverse: inverse,
	}, nil
}

// NewPermutationLayerFromMap is NewPermutationLayer for a sparse source to
// destination map. The keys must be exactly {0, ..., len(perm)-1}.
func NewPermutationLayerFromMap(perm map[int]int) (*PermutationLayer, error) {
	n := len(perm)
	if n == 0 {
		return nil, configErrorf("PermutationLayer", ErrInvalidPermutation, "empty permutation")
	}

	sources := lo.Keys(perm)
	slices.Sort(sources)
	for i, src := range sources {
		if src != i {
			return nil, configErrorf("PermutationLayer", ErrInvalidPermutation, "source position %d is missing", i)
		}
	}

	dense := make([]int, n)
	for src, dst := range perm {
		dense[src] = dst
	}
	return NewPermutationLayer(dense)
}

// Length returns the state width in bits.
func (l *PermutationLayer) Length() int { return len(l.perm) }

// Permutation returns a copy of the source to destination map.
func (l *PermutationLayer) Permutation() []int { return slices.Clone(l.perm) }

// InversePermutation returns a copy of the destination to source map.
func (l *PermutationLayer) InversePermutation() []int { return slices.Clone(l.inverse) }

// Encrypt returns out with out[π(i)] = state[i].
func (l *PermutationLayer) Encrypt(state []byte) ([]byte, error) {
	if err := checkState("PermutationLayer.Encrypt", state, len(l.perm)); err != nil {
		return nil, err
	}
	out := make([]byte, len(state))
	for i, dst := range l.perm {
		out[dst] = state[i]
	}
	return out, nil
}

// Decrypt returns out with out[i] = state[π(i)], undoing Encrypt.
func (l *PermutationLayer) Decrypt(state []byte) ([]byte, error) {
	if err := checkState("PermutationLayer.Decrypt", state, len(l.perm)); err != nil {
		return nil, err
	}
	out := make([]byte, len(state))
	for i, src := range l.perm {
		out[i] = state[src]
	}
	return out, nil
}
