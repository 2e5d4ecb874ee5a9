package main

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/jedisct1/go-spn"
)

// buildSBox picks the S-box in order of precedence: explicit table, seed,
// default table.
func buildSBox(config *Config) (*spn.SBox, error) {
	if len(config.Table) == 0 && config.Seed != "" {
		return spn.GenerateSBox(config.Bits, []byte(config.Seed))
	}
	var table []int
	if len(config.Table) > 0 {
		table = config.Table
	}
	return spn.NewSBox(table, config.Bits)
}

func buildPermutation(config *Config, length int) (*spn.PermutationLayer, error) {
	switch {
	case len(config.Permutation) > 0:
		return spn.NewPermutationLayer(config.Permutation)
	case config.Seed != "":
		return spn.GeneratePermutation(length, []byte(config.Seed))
	default:
		return spn.NewPermutationLayer(lo.Times(length, func(i int) int { return i }))
	}
}

// buildLayers constructs the substitution and permutation layers for a
// state of stateLen bits.
func buildLayers(config *Config, stateLen int) (*spn.SubstitutionLayer, *spn.PermutationLayer, error) {
	sbox, err := buildSBox(config)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build SBOX")
	}

	count := config.SBoxes
	if count < 0 {
		return nil, nil, errors.Errorf("sboxes must not be negative, got %d", count)
	}
	if count == 0 {
		if stateLen%sbox.Bits() != 0 {
			return nil, nil, errors.Errorf("state of %d bits is not a multiple of the %d-bit SBOX width", stateLen, sbox.Bits())
		}
		count = stateLen / sbox.Bits()
	}

	sboxes := lo.Times(count, func(int) *spn.SBox { return sbox })
	sub, err := spn.NewSubstitutionLayer(sboxes, count*sbox.Bits())
	if err != nil {
		return nil, nil, errors.Wrap(err, "build substitution layer")
	}

	perm, err := buildPermutation(config, sub.Length())
	if err != nil {
		return nil, nil, errors.Wrap(err, "build permutation layer")
	}
	if perm.Length() != sub.Length() {
		return nil, nil, errors.Errorf("permutation covers %d bits, substitution layer %d", perm.Length(), sub.Length())
	}

	return sub, perm, nil
}

// run parses input, applies one layer pass and returns the formatted result.
// Forward is substitution then permutation; decryption runs the inverse
// layers in the opposite order.
func run(config Config, input string, log *logrus.Entry) (string, error) {
	state, err := spn.ParseState(input)
	if err != nil {
		return "", errors.Wrap(err, "parse state")
	}

	sub, perm, err := buildLayers(&config, len(state))
	if err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{
		"sboxes": sub.Len(),
		"width":  sub.Width(),
		"length": sub.Length(),
	}).Debug("layers ready")

	type step struct {
		name string
		fn   func([]byte) ([]byte, error)
	}
	steps := []step{
		{"substitution", sub.Encrypt},
		{"permutation", perm.Encrypt},
	}
	if config.Decrypt {
		steps = []step{
			{"inverse permutation", perm.Decrypt},
			{"inverse substitution", sub.Decrypt},
		}
	}

	log.WithField("state", spn.FormatState(state, config.Group)).Debug("input")
	for _, s := range steps {
		state, err = s.fn(state)
		if err != nil {
			return "", errors.Wrap(err, s.name)
		}
		log.WithField("state", spn.FormatState(state, config.Group)).Debug(s.name)
	}

	return spn.FormatState(state, config.Group), nil
}
