package spn

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every error returned from a constructor
	// or generator when the supplied table, layer or permutation is unusable.
	ErrConfiguration = errors.New("spn: invalid configuration")

	// ErrInput is matched by every error returned when an operation receives
	// a state of the wrong shape.
	ErrInput = errors.New("spn: invalid input")

	// ErrInvalidSBox is returned when an S-box table is not a bijection on [0, 2^bits).
	ErrInvalidSBox = errors.New("spn: invalid SBOX mapping")

	// ErrInvalidLayer is returned when S-boxes cannot form a substitution layer.
	ErrInvalidLayer = errors.New("spn: invalid substitution layer")

	// ErrInvalidPermutation is returned when a permutation map is not a bijection on {0, ..., n-1}.
	ErrInvalidPermutation = errors.New("spn: invalid permutation map")

	// ErrInvalidSeed is returned when a generator is given an empty seed.
	ErrInvalidSeed = errors.New("spn: invalid generator seed")

	// ErrInvalidLength is returned when a state does not match the configured width.
	ErrInvalidLength = errors.New("spn: invalid state length")

	// ErrInvalidBit is returned when a state element is neither 0 nor 1.
	ErrInvalidBit = errors.New("spn: state element is not a bit")

	// ErrOutOfRange is returned when an integer lookup falls outside the S-box domain.
	ErrOutOfRange = errors.New("spn: value out of range")
)

// ConfigurationError reports a construction-time defect. It is never
// transient: the configuration must be fixed before use.
type ConfigurationError struct {
	Component string // SBox, SubstitutionLayer, PermutationLayer or Generator
	Reason    string
	Err       error // one of the ErrInvalid* sentinels
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Reason
}

// Unwrap exposes both the specific sentinel and ErrConfiguration.
func (e *ConfigurationError) Unwrap() []error {
	return []error{e.Err, ErrConfiguration}
}

// InputError reports a state or value that does not fit the component it
// was passed to.
type InputError struct {
	Op     string // e.g. "SubstitutionLayer.Encrypt"
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	return e.Err.Error() + ": " + e.Op + ": " + e.Reason
}

// Unwrap exposes both the specific sentinel and ErrInput.
func (e *InputError) Unwrap() []error {
	return []error{e.Err, ErrInput}
}

func configErrorf(component string, sentinel error, format string, args ...any) error {
	return &ConfigurationError{Component: component, Reason: fmt.Sprintf(format, args...), Err: sentinel}
}

func inputErrorf(op string, sentinel error, format string, args ...any) error {
	return &InputError{Op: op, Reason: fmt.Sprintf(format, args...), Err: sentinel}
}

// checkState validates that state holds exactly want bits.
func checkState(op string, state []byte, want int) error {
	if len(state) != want {
		return inputErrorf(op, ErrInvalidLength, "got %d bits, want %d", len(state), want)
	}
	for i, b := range state {
		if b > 1 {
			return inputErrorf(op, ErrInvalidBit, "element %d is %d", i, b)
		}
	}
	return nil
}
