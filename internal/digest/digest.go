// Package digest provides the hash functions available to the hash command.
package digest

import (
	"crypto/sha256"
	"hash"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/rwx-research/fm-cli/internal/errors"
)

// Algorithm names a supported hash function.
type Algorithm string

const (
	SHA256     Algorithm = "sha256"
	SHA3256    Algorithm = "sha3-256"
	BLAKE2b256 Algorithm = "blake2b-256"

	Default = SHA256
)

var constructors = map[Algorithm]func() (hash.Hash, error){
	SHA256: func() (hash.Hash, error) {
		return sha256.New(), nil
	},
	SHA3256: func() (hash.Hash, error) {
		return sha3.New256(), nil
	},
	BLAKE2b256: func() (hash.Hash, error) {
		return blake2b.New256(nil)
	},
}

// New returns a fresh hash for algorithm.
func New(algorithm Algorithm) (hash.Hash, error) {
	constructor, ok := constructors[algorithm]
	if !ok {
		return nil, errors.Errorf("unknown hash algorithm %q, expected one of %v", algorithm, Algorithms())
	}

	return constructor()
}

func Algorithms() []Algorithm {
	algorithms := make([]Algorithm, 0, len(constructors))
	for algorithm := range constructors {
		algorithms = append(algorithms, algorithm)
	}
	sort.Slice(algorithms, func(i, j int) bool { return algorithms[i] < algorithms[j] })
	return algorithms
}
