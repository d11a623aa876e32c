package graph

import (
	"fmt"
	"io"

	"github.com/minio/highwayhash"
)

// fingerprintKey keys source fingerprints; changing it invalidates every stored fingerprint.
var fingerprintKey = []byte("javagen-source-fingerprint-key!!")

// Hash returns the fingerprint of source bytes.
func Hash(src []byte) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(src)
	return hash.Sum64(), err
}

// HashText returns the fingerprint of rendered source text, equal to Hash([]byte(text)).
func HashText(text string) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	_, err = io.WriteString(hash, text)
	return hash.Sum64(), err
}

// FormatFingerprint returns a fingerprint as 16 hex digits.
func FormatFingerprint(fingerprint uint64) string {
	return fmt.Sprintf("%016x", fingerprint)
}
