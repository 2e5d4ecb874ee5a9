// Package spn implements the invertible layer primitives of a
// substitution-permutation network (SPN): S-boxes, substitution layers and
// bit permutation layers.
//
// An SPN round applies a substitution layer (confusion) followed by a
// permutation layer (diffusion), usually with round-key mixing around them.
// This package only provides the layers. Key schedules, key mixing and round
// counts are left to the caller.
//
// # State Layout
//
// A state is a []byte holding one bit per element, each 0 or 1. When a run
// of bits is read as an integer, element i has weight 2^i (least significant
// bit first). StateFromBytes and StateToBytes convert between packed bytes
// and this layout, and FormatState / ParseState convert to and from text.
//
// # Basic Usage
//
//	sub, err := spn.NewSubstitutionLayer([]*spn.SBox{spn.DefaultSBox(), spn.DefaultSBox()}, 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	perm, err := spn.NewPermutationLayer([]int{0, 4, 1, 5, 2, 6, 3, 7})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	state := spn.StateFromBytes([]byte{0x5a})
//	state, _ = sub.Encrypt(state)
//	state, _ = perm.Encrypt(state)
//
//	// Decryption runs the layers in reverse order.
//	state, _ = perm.Decrypt(state)
//	state, _ = sub.Decrypt(state)
//
// # Generated Layers
//
// GenerateSBox and GeneratePermutation derive tables deterministically from a
// seed. The seed is stretched with PBKDF2-SHA256 and the resulting AES-CTR
// keystream drives a Fisher-Yates shuffle.
//
// # Errors
//
// Constructors and generators return a *ConfigurationError, matching
// ErrConfiguration, when a table or map is not a bijection of the right
// size. Operations return an *InputError, matching ErrInput, when a state has
// the wrong length or contains something other than 0 and 1. Neither kind is
// transient and no operation does partial work before failing.
//
// # Thread Safety
//
// SBox, SubstitutionLayer and PermutationLayer are immutable after
// construction and safe for concurrent use.
package spn
