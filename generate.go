package spn

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// generatorIterations is the PBKDF2 work factor applied to generator seeds.
	generatorIterations = 4096

	// keystreamBufferSize is how many keystream bytes are produced per refill.
	keystreamBufferSize = 4096
)

// GenerateSBox derives a bits-wide S-box from seed. The same (bits, seed)
// pair always yields the same table.
func GenerateSBox(bits int, seed []byte) (*SBox, error) {
	if bits < MinSBoxBits || bits > MaxSBoxBits {
		return nil, configErrorf("Generator", ErrInvalidSBox, "width %d outside [%d, %d]", bits, MinSBoxBits, MaxSBoxBits)
	}
	ks, err := newKeystream("SPN-SBOX", bits, seed)
	if err != nil {
		return nil, err
	}
	return NewSBox(ks.shuffledIdentity(1<<bits), bits)
}

// GeneratePermutation derives a permutation layer of length bits from seed.
// The same (length, seed) pair always yields the same permutation.
func GeneratePermutation(length int, seed []byte) (*PermutationLayer, error) {
	if length < 1 {
		return nil, configErrorf("Generator", ErrInvalidPermutation, "length %d is not positive", length)
	}
	ks, err := newKeystream("SPN-PERM", length, seed)
	if err != nil {
		return nil, err
	}
	return NewPermutationLayer(ks.shuffledIdentity(length))
}

// keystream hands out 32-bit words from an AES-CTR stream.
type keystream struct {
	stream cipher.Stream
	buf    []byte
	pos    int
}

// newKeystream stretches seed with PBKDF2 into an AES-128 key and IV. The
// salt binds the stream to the object kind and size so that an S-box and a
// permutation derived from one seed are unrelated.
func newKeystream(label string, size int, seed []byte) (*keystream, error) {
	if len(seed) == 0 {
		return nil, configErrorf("Generator", ErrInvalidSeed, "seed is empty")
	}

	salt := binary.BigEndian.AppendUint32([]byte(label), uint32(size))
	kseed := pbkdf2.Key(seed, salt, generatorIterations, 32, sha256.New)

	block, err := aes.NewCipher(kseed[:16])
	if err != nil {
		panic("failed to create AES cipher for generator: " + err.Error())
	}

	return &keystream{
		stream: cipher.NewCTR(block, kseed[16:]),
		buf:    make([]byte, keystreamBufferSize),
		pos:    keystreamBufferSize, // force initial fill
	}, nil
}

func (k *keystream) next32() uint32 {
	if k.pos+4 > len(k.buf) {
		clear(k.buf)
		k.stream.XORKeyStream(k.buf, k.buf)
		k.pos = 0
	}
	v := binary.BigEndian.Uint32(k.buf[k.pos:])
	k.pos += 4
	return v
}

// shuffledIdentity returns a Fisher-Yates shuffle of 0..n-1.
func (k *keystream) shuffledIdentity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := lemireRandomIndex(k.next32, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// lemireRandomIndex returns an unbiased index in [0, n) using Lemire's
// multiply-and-reject method. n must be in [1, 2^32).
func lemireRandomIndex(rng func() uint32, n int) int {
	bound := uint32(n)
	prod := uint64(rng()) * uint64(bound)
	if low := uint32(prod); low < bound {
		threshold := -bound % bound
		for low < threshold {
			prod = uint64(rng()) * uint64(bound)
			low = uint32(prod)
		}
	}
	return int(prod >> 32)
}
